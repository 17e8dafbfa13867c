package rest

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tarfakademi/portal/internal/db"
)

const (
	apiPrefix   = "/api/v1"
	adminPrefix = "/admin/v1"
)

// NewEcho assembles the engine with both route groups. An empty
// adminToken disables the whole admin surface rather than leaving it
// open.
func NewEcho(h *Handler, ah *AdminHandler, adminToken string, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(middleware.CORS())

	e.GET("/health", h.Health)

	api := e.Group(apiPrefix)
	api.GET("/home", h.Home)

	// One list + detail pair per post type; details are addressed by
	// locale and slug the way the site's URLs are.
	for path, postType := range map[string]string{
		"/posts":    db.TypeBlog,
		"/events":   db.TypeEvent,
		"/videos":   db.TypeVideo,
		"/podcasts": db.TypePodcast,
		"/services": db.TypeService,
	} {
		api.GET(path, h.ListPosts(postType))
		api.GET(path+"/:locale/:slug", h.PostDetail(postType))
	}

	api.GET("/events/upcoming", h.UpcomingEvents)
	api.GET("/events/past", h.PastEvents)
	api.GET("/events/undated", h.UndatedEvents)
	api.GET("/categories", h.Categories)
	api.GET("/settings", h.Settings)
	api.GET("/heroes", h.Heroes)
	api.GET("/faqs", h.Faqs)
	api.GET("/search", h.Search)
	api.GET("/pages", h.ContentPages)
	api.GET("/pages/groups", h.ContentPageGroups)
	api.GET("/pages/:slug", h.ContentPage)

	adm := e.Group(adminPrefix, requireToken(adminToken))
	adm.GET("/posts", ah.ListPosts)
	adm.POST("/posts", ah.CreatePost)
	adm.GET("/posts/:id", ah.GetPost)
	adm.PUT("/posts/:id", ah.UpdatePost)
	adm.DELETE("/posts/:id", ah.DeletePost)
	adm.PUT("/settings", ah.SaveSettings)
	adm.PUT("/heroes", ah.SaveHero)
	adm.POST("/faqs", ah.CreateFaq)
	adm.PUT("/faqs/:id", ah.UpdateFaq)
	adm.DELETE("/faqs/:id", ah.DeleteFaq)
	adm.POST("/categories", ah.CreateCategory)
	adm.PUT("/categories/:id", ah.UpdateCategory)
	adm.DELETE("/categories/:id", ah.DeleteCategory)
	adm.PUT("/pages", ah.SaveContentPage)

	return e
}

// requireToken guards the admin group with a static bearer token.
func requireToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return c.JSON(http.StatusForbidden, fail("admin api disabled"))
			}
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
				return c.JSON(http.StatusUnauthorized, fail("missing bearer token"))
			}
			if subtle.ConstantTimeCompare([]byte(auth[len(prefix):]), []byte(token)) != 1 {
				return c.JSON(http.StatusUnauthorized, fail("invalid token"))
			}
			return next(c)
		}
	}
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				// Commit the error response so the logged status is the
				// one the client saw.
				c.Error(err)
			}
			log.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			)
			return nil
		}
	}
}

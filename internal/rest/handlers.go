package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tarfakademi/portal/internal/portal"
)

// Handler serves the public, read-only API.
type Handler struct {
	portal Portal
	log    *slog.Logger
}

func NewHandler(p Portal, log *slog.Logger) *Handler {
	return &Handler{portal: p, log: log}
}

func (h *Handler) respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, portal.ErrNotFound):
		return c.JSON(http.StatusNotFound, fail("not found"))
	case errors.Is(err, portal.ErrInvalidType):
		return c.JSON(http.StatusBadRequest, fail("unknown post type"))
	}
	h.log.Error("request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, fail("internal error"))
}

func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func locale(c echo.Context) string {
	return c.QueryParam("locale")
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Home handles GET /api/v1/home.
func (h *Handler) Home(c echo.Context) error {
	home, err := h.portal.Home(c.Request().Context(), locale(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(home))
}

// ListPosts returns the list handler for one post type, e.g.
// GET /api/v1/videos.
func (h *Handler) ListPosts(postType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := h.portal.PostsByType(
			c.Request().Context(), postType, locale(c), intQuery(c, "limit", 0),
		)
		if err != nil {
			return h.respondError(c, err)
		}
		return c.JSON(http.StatusOK, ok(posts))
	}
}

// PostDetail returns the detail handler for one post type, e.g.
// GET /api/v1/videos/:locale/:slug.
func (h *Handler) PostDetail(postType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		detail, err := h.portal.PostDetail(
			c.Request().Context(), postType, c.Param("slug"), c.Param("locale"),
		)
		if err != nil {
			return h.respondError(c, err)
		}
		return c.JSON(http.StatusOK, ok(detail))
	}
}

func (h *Handler) eventPage(c echo.Context, fetch func() (*portal.EventPage, error)) error {
	page, err := fetch()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(page))
}

// UpcomingEvents handles GET /api/v1/events/upcoming.
func (h *Handler) UpcomingEvents(c echo.Context) error {
	return h.eventPage(c, func() (*portal.EventPage, error) {
		return h.portal.UpcomingEvents(
			c.Request().Context(), locale(c),
			intQuery(c, "page", 1), intQuery(c, "perPage", 0),
			c.QueryParam("order"),
		)
	})
}

// PastEvents handles GET /api/v1/events/past.
func (h *Handler) PastEvents(c echo.Context) error {
	return h.eventPage(c, func() (*portal.EventPage, error) {
		return h.portal.PastEvents(
			c.Request().Context(), locale(c),
			intQuery(c, "page", 1), intQuery(c, "perPage", 0),
			c.QueryParam("order"),
		)
	})
}

// UndatedEvents handles GET /api/v1/events/undated.
func (h *Handler) UndatedEvents(c echo.Context) error {
	return h.eventPage(c, func() (*portal.EventPage, error) {
		return h.portal.UndatedEvents(
			c.Request().Context(), locale(c),
			intQuery(c, "page", 1), intQuery(c, "perPage", 0),
		)
	})
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(c echo.Context) error {
	categories := h.portal.Categories(
		c.Request().Context(), c.QueryParam("type"), locale(c),
	)
	return c.JSON(http.StatusOK, ok(categories))
}

// Settings handles GET /api/v1/settings.
func (h *Handler) Settings(c echo.Context) error {
	settings := h.portal.Settings(c.Request().Context(), locale(c))
	return c.JSON(http.StatusOK, ok(settings))
}

// Heroes handles GET /api/v1/heroes.
func (h *Handler) Heroes(c echo.Context) error {
	heroes := h.portal.Heroes(c.Request().Context(), locale(c))
	return c.JSON(http.StatusOK, ok(heroes))
}

// Faqs handles GET /api/v1/faqs.
func (h *Handler) Faqs(c echo.Context) error {
	faqs := h.portal.Faqs(c.Request().Context(), locale(c))
	return c.JSON(http.StatusOK, ok(faqs))
}

// Search handles GET /api/v1/search.
func (h *Handler) Search(c echo.Context) error {
	results, err := h.portal.Search(c.Request().Context(), c.QueryParam("q"), locale(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(results))
}

// ContentPages handles GET /api/v1/pages.
func (h *Handler) ContentPages(c echo.Context) error {
	pages, err := h.portal.ContentPages(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(pages))
}

// ContentPageGroups handles GET /api/v1/pages/groups.
func (h *Handler) ContentPageGroups(c echo.Context) error {
	groups, err := h.portal.ContentPageGroups(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(groups))
}

// ContentPage handles GET /api/v1/pages/:slug.
func (h *Handler) ContentPage(c echo.Context) error {
	page, err := h.portal.ContentPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(page))
}

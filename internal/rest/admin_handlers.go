package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tarfakademi/portal/internal/admin"
	"github.com/tarfakademi/portal/internal/db"
)

// AdminHandler serves the token-protected mutation API.
type AdminHandler struct {
	admin Admin
	log   *slog.Logger
}

func NewAdminHandler(a Admin, log *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: a, log: log}
}

func (h *AdminHandler) respondError(c echo.Context, err error) error {
	var vErr *admin.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "validation failed",
			Fields:  vErr.Fields,
		})
	case errors.Is(err, admin.ErrNotFound):
		return c.JSON(http.StatusNotFound, fail("not found"))
	case errors.Is(err, admin.ErrSlugTaken):
		return c.JSON(http.StatusConflict, fail("slug already in use"))
	}
	h.log.Error("admin request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, fail("internal error"))
}

// ListPosts handles GET /admin/v1/posts.
func (h *AdminHandler) ListPosts(c echo.Context) error {
	filter := db.PostFilter{
		Type:       c.QueryParam("type"),
		Status:     c.QueryParam("status"),
		CategoryID: c.QueryParam("categoryId"),
		Locale:     c.QueryParam("locale"),
		Query:      c.QueryParam("q"),
	}
	listing, err := h.admin.ListPosts(c.Request().Context(), filter, intQuery(c, "page", 1))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(listing))
}

// GetPost handles GET /admin/v1/posts/:id.
func (h *AdminHandler) GetPost(c echo.Context) error {
	post, err := h.admin.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(post))
}

// CreatePost handles POST /admin/v1/posts.
func (h *AdminHandler) CreatePost(c echo.Context) error {
	var input admin.PostInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	post, err := h.admin.CreatePost(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, ok(post))
}

// UpdatePost handles PUT /admin/v1/posts/:id.
func (h *AdminHandler) UpdatePost(c echo.Context) error {
	var input admin.PostInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	post, err := h.admin.UpdatePost(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(post))
}

// DeletePost handles DELETE /admin/v1/posts/:id.
func (h *AdminHandler) DeletePost(c echo.Context) error {
	if err := h.admin.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

// SaveSettings handles PUT /admin/v1/settings.
func (h *AdminHandler) SaveSettings(c echo.Context) error {
	var input admin.SettingsInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	setting, err := h.admin.SaveSettings(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(setting))
}

// SaveHero handles PUT /admin/v1/heroes.
func (h *AdminHandler) SaveHero(c echo.Context) error {
	var input admin.HeroInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	hero, err := h.admin.SaveHero(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(hero))
}

// CreateFaq handles POST /admin/v1/faqs.
func (h *AdminHandler) CreateFaq(c echo.Context) error {
	var input admin.FaqInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	faq, err := h.admin.CreateFaq(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, ok(faq))
}

// UpdateFaq handles PUT /admin/v1/faqs/:id.
func (h *AdminHandler) UpdateFaq(c echo.Context) error {
	var input admin.FaqInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	faq, err := h.admin.UpdateFaq(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(faq))
}

// DeleteFaq handles DELETE /admin/v1/faqs/:id.
func (h *AdminHandler) DeleteFaq(c echo.Context) error {
	if err := h.admin.DeleteFaq(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

// CreateCategory handles POST /admin/v1/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input admin.CategoryInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	category, err := h.admin.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, ok(category))
}

// UpdateCategory handles PUT /admin/v1/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	var input admin.CategoryInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	category, err := h.admin.UpdateCategory(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(category))
}

// DeleteCategory handles DELETE /admin/v1/categories/:id.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.admin.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

// SaveContentPage handles PUT /admin/v1/pages.
func (h *AdminHandler) SaveContentPage(c echo.Context) error {
	var input admin.ContentPageInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	page, err := h.admin.SaveContentPage(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, ok(page))
}

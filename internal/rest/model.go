package rest

import (
	"context"

	"github.com/tarfakademi/portal/internal/admin"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/portal"
)

// Portal is the read surface the public handlers consume.
// *portal.Manager satisfies it.
type Portal interface {
	Home(ctx context.Context, locale string) (*portal.HomeData, error)
	PostsByType(ctx context.Context, postType, locale string, limit int) ([]portal.Post, error)
	PostDetail(ctx context.Context, postType, slug, locale string) (*portal.PostDetail, error)
	UpcomingEvents(ctx context.Context, locale string, page, perPage int, order string) (*portal.EventPage, error)
	PastEvents(ctx context.Context, locale string, page, perPage int, order string) (*portal.EventPage, error)
	UndatedEvents(ctx context.Context, locale string, page, perPage int) (*portal.EventPage, error)
	Categories(ctx context.Context, postType, locale string) []portal.Category
	Settings(ctx context.Context, locale string) portal.Settings
	Heroes(ctx context.Context, locale string) []portal.Hero
	Faqs(ctx context.Context, locale string) []portal.Faq
	Search(ctx context.Context, query, locale string) ([]portal.Post, error)
	ContentPage(ctx context.Context, slug string) (*portal.ContentPage, error)
	ContentPages(ctx context.Context) ([]portal.ContentPage, error)
	ContentPageGroups(ctx context.Context) ([]portal.ContentPageGroup, error)
}

// Admin is the mutation surface behind the token-protected routes.
// *admin.Manager satisfies it.
type Admin interface {
	ListPosts(ctx context.Context, filter db.PostFilter, page int) (*admin.PostListing, error)
	GetPost(ctx context.Context, id string) (*db.Post, error)
	CreatePost(ctx context.Context, input admin.PostInput) (*db.Post, error)
	UpdatePost(ctx context.Context, id string, input admin.PostInput) (*db.Post, error)
	DeletePost(ctx context.Context, id string) error
	SaveSettings(ctx context.Context, input admin.SettingsInput) (*db.Setting, error)
	SaveHero(ctx context.Context, input admin.HeroInput) (*db.Hero, error)
	CreateFaq(ctx context.Context, input admin.FaqInput) (*db.Faq, error)
	UpdateFaq(ctx context.Context, id string, input admin.FaqInput) (*db.Faq, error)
	DeleteFaq(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, input admin.CategoryInput) (*db.Category, error)
	UpdateCategory(ctx context.Context, id string, input admin.CategoryInput) (*db.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SaveContentPage(ctx context.Context, input admin.ContentPageInput) (*db.ContentPage, error)
}

// Response is the uniform JSON envelope.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Fields  any    `json:"fields,omitempty"`
}

func ok(data any) Response {
	return Response{Success: true, Data: data}
}

func fail(message string) Response {
	return Response{Success: false, Message: message}
}

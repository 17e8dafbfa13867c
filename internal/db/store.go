package db

import (
	"context"
	"time"
)

// Store is the persistence interface consumed by the portal and admin
// managers. *Repository is the production implementation; tests use
// hand-rolled stubs.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	// Public reads (published rows only unless noted).
	PostsByType(ctx context.Context, postType, locale string, limit int) ([]Post, error)
	PostBySlug(ctx context.Context, postType, slug, locale string) (*Post, error)
	RelatedPosts(ctx context.Context, postType, locale, excludeID string, limit int) ([]Post, error)
	SearchPosts(ctx context.Context, locale, query string, limit int) ([]Post, error)
	Categories(ctx context.Context, postType, locale string) ([]Category, error)
	SettingByLocale(ctx context.Context, locale string) (*Setting, error)
	Heroes(ctx context.Context, locale string) ([]Hero, error)
	Faqs(ctx context.Context, locale string) ([]Faq, error)
	ContentPageBySlug(ctx context.Context, slug string) (*ContentPage, error)
	ContentPages(ctx context.Context) ([]ContentPage, error)

	// Event partitions.
	UpcomingEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]Post, error)
	UpcomingEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error)
	PastEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]Post, error)
	PastEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error)
	UndatedEvents(ctx context.Context, locale string, limit, offset int) ([]Post, error)
	UndatedEventsCount(ctx context.Context, locale string) (int, error)

	// Admin reads (any status).
	PostsFiltered(ctx context.Context, filter PostFilter) ([]Post, error)
	PostsFilteredCount(ctx context.Context, filter PostFilter) (int, error)
	PostByID(ctx context.Context, id string) (*Post, error)
	PostAnyStatus(ctx context.Context, postType, slug, locale string) (*Post, error)
	FaqByID(ctx context.Context, id string) (*Faq, error)
	CategoryByID(ctx context.Context, id string) (*Category, error)

	// Admin writes.
	CreatePost(ctx context.Context, post *Post) error
	UpdatePost(ctx context.Context, post *Post) error
	DeletePost(ctx context.Context, id string) error
	UpsertSetting(ctx context.Context, setting *Setting) error
	UpsertHero(ctx context.Context, hero *Hero) error
	CreateFaq(ctx context.Context, faq *Faq) error
	UpdateFaq(ctx context.Context, faq *Faq) error
	DeleteFaq(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id string) error
	UpsertContentPage(ctx context.Context, page *ContentPage) error
}

var _ Store = (*Repository)(nil)

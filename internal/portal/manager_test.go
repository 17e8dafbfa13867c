package portal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarfakademi/portal/internal/cache"
	"github.com/tarfakademi/portal/internal/db"
)

var istanbul = mustLoadLocation("Europe/Istanbul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestManager(t *testing.T, store db.Store) *Manager {
	t.Helper()
	c := cache.NewMemory()
	t.Cleanup(func() { _ = c.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(store, c, logger, istanbul)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestPostsByType(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	calls := 0
	store := &storeMock{
		postsByTypeFn: func(ctx context.Context, postType, locale string, limit int) ([]db.Post, error) {
			calls++
			assert.Equal(t, db.TypeBlog, postType)
			assert.Equal(t, "en", locale)
			assert.Equal(t, 6, limit)
			return []db.Post{
				{ID: "p1", Type: db.TypeBlog, Slug: "first", Locale: "en", Title: "First",
					Status: db.StatusPublished, CreatedAt: created, UpdatedAt: created,
					PublishedAt: timePtr(created)},
				{ID: "p2", Type: db.TypeBlog, Slug: "second", Locale: "en", Title: "Second",
					Status: db.StatusPublished, CreatedAt: created, UpdatedAt: created,
					PublishedAt: timePtr(created)},
			}, nil
		},
	}
	manager := newTestManager(t, store)

	posts, err := manager.PostsByType(ctx, db.TypeBlog, "en", 6)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Slug)
	assert.Equal(t, "2026-01-05T10:00:00Z", posts[0].CreatedAt)

	// Second read is served from cache.
	again, err := manager.PostsByType(ctx, db.TypeBlog, "en", 6)
	require.NoError(t, err)
	assert.Equal(t, posts, again)
	assert.Equal(t, 1, calls)
}

func TestPostsByTypeInvalidType(t *testing.T) {
	manager := newTestManager(t, &storeMock{})

	_, err := manager.PostsByType(context.Background(), "article", "tr", 0)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestPostsByTypeUnknownLocaleFallsBack(t *testing.T) {
	var gotLocale string
	store := &storeMock{
		postsByTypeFn: func(ctx context.Context, postType, locale string, limit int) ([]db.Post, error) {
			gotLocale = locale
			return nil, nil
		},
	}
	manager := newTestManager(t, store)

	_, err := manager.PostsByType(context.Background(), db.TypeBlog, "de", 0)
	require.NoError(t, err)
	assert.Equal(t, "tr", gotLocale)
}

func TestPostDetail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	store := &storeMock{
		postBySlugFn: func(ctx context.Context, postType, slug, locale string) (*db.Post, error) {
			return &db.Post{ID: "p1", Type: db.TypeBlog, Slug: slug, Locale: locale,
				Title: "Post", Status: db.StatusPublished,
				CreatedAt: now, UpdatedAt: now}, nil
		},
		relatedPostsFn: func(ctx context.Context, postType, locale, excludeID string, limit int) ([]db.Post, error) {
			assert.Equal(t, "p1", excludeID)
			assert.Equal(t, 3, limit)
			return []db.Post{
				{ID: "p2", Type: db.TypeBlog, Slug: "other", Locale: locale,
					Status: db.StatusPublished, CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	manager := newTestManager(t, store)

	detail, err := manager.PostDetail(ctx, db.TypeBlog, "post", "tr")
	require.NoError(t, err)
	assert.Equal(t, "p1", detail.Post.ID)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "p2", detail.Related[0].ID)
}

func TestPostDetailNotFound(t *testing.T) {
	found := false
	store := &storeMock{
		postBySlugFn: func(ctx context.Context, postType, slug, locale string) (*db.Post, error) {
			if !found {
				return nil, nil
			}
			return &db.Post{ID: "p1", Type: postType, Slug: slug, Locale: locale,
				Status: db.StatusPublished}, nil
		},
	}
	manager := newTestManager(t, store)

	_, err := manager.PostDetail(context.Background(), db.TypeBlog, "missing", "tr")
	assert.ErrorIs(t, err, ErrNotFound)

	// A miss must not be cached: once the row exists it is served.
	found = true
	detail, err := manager.PostDetail(context.Background(), db.TypeBlog, "missing", "tr")
	require.NoError(t, err)
	assert.Equal(t, "p1", detail.Post.ID)
}

func TestPostGalleryFromMeta(t *testing.T) {
	store := &storeMock{
		postBySlugFn: func(ctx context.Context, postType, slug, locale string) (*db.Post, error) {
			return &db.Post{ID: "p1", Type: db.TypeEvent, Slug: slug, Locale: locale,
				Status: db.StatusPublished,
				Meta:   map[string]any{"gallery": []any{"a.jpg", "b.jpg"}}}, nil
		},
	}
	manager := newTestManager(t, store)

	detail, err := manager.PostDetail(context.Background(), db.TypeEvent, "expo", "tr")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, detail.Post.Gallery)

	// The cached copy round-trips through JSON; the gallery must survive.
	cached, err := manager.PostDetail(context.Background(), db.TypeEvent, "expo", "tr")
	require.NoError(t, err)
	assert.Equal(t, detail.Post.Gallery, cached.Post.Gallery)
}

func TestSettingsFallsBackToDefaults(t *testing.T) {
	store := &storeMock{
		settingFn: func(ctx context.Context, locale string) (*db.Setting, error) {
			if locale == "tr" {
				return &db.Setting{Locale: "tr", SiteName: "Özel Ad",
					ContactEmail: "ozel@tarf.org"}, nil
			}
			return nil, nil
		},
	}
	manager := newTestManager(t, store)

	stored := manager.Settings(context.Background(), "tr")
	assert.Equal(t, "Özel Ad", stored.SiteName)

	// No row for the locale: defaults carry the requested locale.
	missing := manager.Settings(context.Background(), "ar")
	assert.Equal(t, "ar", missing.Locale)
	assert.Equal(t, "TARF Akademi", missing.SiteName)
	assert.Equal(t, "iletisim@tarf.org", missing.ContactEmail)
}

func TestSettingsQueryErrorDegradesToDefaults(t *testing.T) {
	store := &storeMock{
		settingFn: func(ctx context.Context, locale string) (*db.Setting, error) {
			return nil, errors.New("connection refused")
		},
	}
	manager := newTestManager(t, store)

	settings := manager.Settings(context.Background(), "en")
	assert.Equal(t, "en", settings.Locale)
	assert.Equal(t, "TARF Akademi", settings.SiteName)
}

func TestHeroesDegradeToEmpty(t *testing.T) {
	store := &storeMock{
		heroesFn: func(ctx context.Context, locale string) ([]db.Hero, error) {
			return nil, errors.New("connection refused")
		},
	}
	manager := newTestManager(t, store)

	heroes := manager.Heroes(context.Background(), "tr")
	assert.NotNil(t, heroes)
	assert.Empty(t, heroes)
}

func TestFaqsOrder(t *testing.T) {
	store := &storeMock{
		faqsFn: func(ctx context.Context, locale string) ([]db.Faq, error) {
			return []db.Faq{
				{ID: "f1", Locale: locale, Question: "Q1", SortOrder: 1},
				{ID: "f2", Locale: locale, Question: "Q2", SortOrder: 2},
			}, nil
		},
	}
	manager := newTestManager(t, store)

	faqs := manager.Faqs(context.Background(), "tr")
	require.Len(t, faqs, 2)
	assert.Equal(t, 1, faqs[0].Order)
	assert.Equal(t, 2, faqs[1].Order)
}

func TestSearch(t *testing.T) {
	var gotQuery string
	store := &storeMock{
		searchPostsFn: func(ctx context.Context, locale, query string, limit int) ([]db.Post, error) {
			gotQuery = query
			assert.Equal(t, 20, limit)
			return []db.Post{{ID: "p1", Type: db.TypeBlog, Title: "Yapay Zeka",
				Status: db.StatusPublished}}, nil
		},
	}
	manager := newTestManager(t, store)

	results, err := manager.Search(context.Background(), "  yapay  ", "tr")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "yapay", gotQuery)
}

func TestSearchEmptyQuery(t *testing.T) {
	store := &storeMock{
		searchPostsFn: func(ctx context.Context, locale, query string, limit int) ([]db.Post, error) {
			t.Fatal("store must not be queried for an empty search")
			return nil, nil
		},
	}
	manager := newTestManager(t, store)

	results, err := manager.Search(context.Background(), "   ", "tr")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHome(t *testing.T) {
	store := &storeMock{
		postsByTypeFn: func(ctx context.Context, postType, locale string, limit int) ([]db.Post, error) {
			assert.Equal(t, 6, limit)
			return []db.Post{{ID: postType + "-1", Type: postType,
				Status: db.StatusPublished}}, nil
		},
		upcomingCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			return 1, nil
		},
		upcomingFn: func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
			assert.True(t, asc)
			return []db.Post{{ID: "event-1", Type: db.TypeEvent,
				Status: db.StatusPublished}}, nil
		},
	}
	manager := newTestManager(t, store)

	home, err := manager.Home(context.Background(), "tr")
	require.NoError(t, err)
	require.Len(t, home.BlogPosts, 1)
	assert.Equal(t, "blog-1", home.BlogPosts[0].ID)
	require.Len(t, home.Events, 1)
	assert.Equal(t, "event-1", home.Events[0].ID)
	assert.Equal(t, "TARF Akademi", home.Settings.SiteName)
}

func TestContentPage(t *testing.T) {
	store := &storeMock{
		contentPageFn: func(ctx context.Context, slug string) (*db.ContentPage, error) {
			if slug != "hakkimizda" {
				return nil, nil
			}
			return &db.ContentPage{Slug: slug, Category: db.PageKurumsal,
				Title: "Hakkımızda", Status: db.StatusPublished,
				Data: map[string]any{"hero": map[string]any{"title": "Hakkımızda"}}}, nil
		},
	}
	manager := newTestManager(t, store)

	page, err := manager.ContentPage(context.Background(), "hakkimizda")
	require.NoError(t, err)
	assert.Equal(t, "Hakkımızda", page.Title)
	// SEO title falls back to the page title when unset.
	assert.Equal(t, "Hakkımızda", page.SeoTitle)

	_, err = manager.ContentPage(context.Background(), "yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentPageGroups(t *testing.T) {
	store := &storeMock{
		contentPagesFn: func(ctx context.Context) ([]db.ContentPage, error) {
			return []db.ContentPage{
				{Slug: "gizlilik", Category: db.PageYasal, Title: "Gizlilik"},
				{Slug: "hakkimizda", Category: db.PageKurumsal, Title: "Hakkımızda"},
				{Slug: "vizyon", Category: db.PageKurumsal, Title: "Vizyon"},
			}, nil
		},
	}
	manager := newTestManager(t, store)

	groups, err := manager.ContentPageGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Canonical category order, not insertion order.
	assert.Equal(t, db.PageKurumsal, groups[0].Category)
	assert.Len(t, groups[0].Pages, 2)
	assert.NotEmpty(t, groups[0].Label)
	assert.Equal(t, db.PageYasal, groups[1].Category)
}

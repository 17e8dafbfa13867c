package portal

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tarfakademi/portal/internal/cache"
	"github.com/tarfakademi/portal/internal/cachekeys"
	"github.com/tarfakademi/portal/internal/content"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/i18n"
)

const (
	// cacheTTL bounds every cached read regardless of tag invalidation.
	cacheTTL = time.Hour

	relatedLimit     = 3
	searchLimit      = 20
	homeSectionLimit = 6
)

// Manager is the Content Access Layer: typed, cached, locale-aware read
// access to posts, categories, settings, heroes, FAQs and content
// pages. It owns no data; it is a read-through projection over the
// store, with the cache as its only shared mutable state.
type Manager struct {
	db    db.Store
	cache cache.Cache
	log   *slog.Logger
	loc   *time.Location

	// now is swapped in tests to pin the event partition boundary.
	now func() time.Time
}

func NewManager(store db.Store, c cache.Cache, logger *slog.Logger, loc *time.Location) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	return &Manager{
		db:    store,
		cache: c,
		log:   logger,
		loc:   loc,
		now:   time.Now,
	}
}

// PostsByType retrieves published posts of one type, newest published
// first. A limit <= 0 returns all. Failures propagate: there is no
// fallback for a primary content list.
func (m *Manager) PostsByType(ctx context.Context, postType, locale string, limit int) ([]Post, error) {
	if !db.IsPostType(postType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, postType)
	}
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("posts-by-type", postType, loc.String(), strconv.Itoa(limit))
	tags := []string{cachekeys.PostsTag(postType, loc)}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]Post, error) {
		rows, err := m.db.PostsByType(ctx, postType, loc.String(), limit)
		if err != nil {
			return nil, fmt.Errorf("db get posts: %w", err)
		}
		return Map(rows, NewPost), nil
	})
}

// PostDetail retrieves a single published post with up to three related
// posts of the same type and locale. Returns ErrNotFound when no
// published post matches, which is a recoverable condition distinct
// from an unreachable database.
func (m *Manager) PostDetail(ctx context.Context, postType, slug, locale string) (*PostDetail, error) {
	if !db.IsPostType(postType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, postType)
	}
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("post-detail", postType, loc.String(), slug)
	tags := []string{
		cachekeys.PostTag(postType, loc, slug),
		cachekeys.PostsTag(postType, loc),
	}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) (*PostDetail, error) {
		row, err := m.db.PostBySlug(ctx, postType, slug, loc.String())
		if err != nil {
			return nil, fmt.Errorf("db get post by slug: %w", err)
		}
		if row == nil {
			return nil, ErrNotFound
		}

		related, err := m.db.RelatedPosts(ctx, postType, loc.String(), row.ID, relatedLimit)
		if err != nil {
			return nil, fmt.Errorf("db get related posts: %w", err)
		}

		return &PostDetail{
			Post:    NewPost(*row),
			Related: Map(related, NewPost),
		}, nil
	})
}

// Settings retrieves the per-locale site settings. Settings are
// non-critical: a missing row or a failed query degrades to hard-coded
// defaults, never to an error.
func (m *Manager) Settings(ctx context.Context, locale string) Settings {
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("settings", loc.String())
	tags := []string{cachekeys.SettingsTag(loc)}

	settings, err := cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) (Settings, error) {
		row, err := m.db.SettingByLocale(ctx, loc.String())
		if err != nil {
			return Settings{}, fmt.Errorf("db get settings: %w", err)
		}
		if row == nil {
			return DefaultSettings(loc), nil
		}
		return NewSettings(*row), nil
	})
	if err != nil {
		m.log.Error("settings read failed, using defaults", "locale", loc, "error", err)
		return DefaultSettings(loc)
	}

	return settings
}

// Heroes retrieves the landing heroes for a locale, newest first.
// Degrades to an empty list on failure.
func (m *Manager) Heroes(ctx context.Context, locale string) []Hero {
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("heroes", loc.String())
	tags := []string{cachekeys.HeroesTag(loc)}

	heroes, err := cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]Hero, error) {
		rows, err := m.db.Heroes(ctx, loc.String())
		if err != nil {
			return nil, fmt.Errorf("db get heroes: %w", err)
		}
		return Map(rows, NewHero), nil
	})
	if err != nil {
		m.log.Warn("heroes read failed", "locale", loc, "error", err)
		return []Hero{}
	}

	return heroes
}

// Faqs retrieves FAQs for a locale ordered by sort order. Degrades to
// an empty list on failure.
func (m *Manager) Faqs(ctx context.Context, locale string) []Faq {
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("faqs", loc.String())
	tags := []string{cachekeys.FaqsTag(loc)}

	faqs, err := cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]Faq, error) {
		rows, err := m.db.Faqs(ctx, loc.String())
		if err != nil {
			return nil, fmt.Errorf("db get faqs: %w", err)
		}
		return Map(rows, NewFaq), nil
	})
	if err != nil {
		m.log.Warn("faqs read failed", "locale", loc, "error", err)
		return []Faq{}
	}

	return faqs
}

// Categories retrieves categories for a locale, optionally narrowed to
// one post type. Degrades to an empty list on failure.
func (m *Manager) Categories(ctx context.Context, postType, locale string) []Category {
	loc := i18n.Normalize(locale)
	if postType != "" && !db.IsPostType(postType) {
		m.log.Warn("categories requested for unknown post type", "type", postType)
		return []Category{}
	}

	key := cachekeys.Key("categories", loc.String(), postType)
	tags := []string{cachekeys.CategoriesTag(loc, postType)}

	categories, err := cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]Category, error) {
		rows, err := m.db.Categories(ctx, postType, loc.String())
		if err != nil {
			return nil, fmt.Errorf("db get categories: %w", err)
		}
		return Map(rows, NewCategory), nil
	})
	if err != nil {
		m.log.Warn("categories read failed", "locale", loc, "error", err)
		return []Category{}
	}

	return categories
}

// Search runs a case-insensitive substring match over title, excerpt
// and content of all published posts in the locale, newest first,
// capped at 20 results. Failures propagate.
func (m *Manager) Search(ctx context.Context, query, locale string) ([]Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Post{}, nil
	}
	loc := i18n.Normalize(locale)

	key := cachekeys.Key("search", loc.String(), query)
	tags := make([]string, 0, len(db.PostTypes))
	for _, postType := range db.PostTypes {
		tags = append(tags, cachekeys.PostsTag(postType, loc))
	}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]Post, error) {
		rows, err := m.db.SearchPosts(ctx, loc.String(), query, searchLimit)
		if err != nil {
			return nil, fmt.Errorf("db search posts: %w", err)
		}
		return Map(rows, NewPost), nil
	})
}

// Home aggregates every landing page section. List failures propagate;
// the non-critical sections degrade individually.
func (m *Manager) Home(ctx context.Context, locale string) (*HomeData, error) {
	loc := i18n.Normalize(locale)

	blog, err := m.PostsByType(ctx, db.TypeBlog, loc.String(), homeSectionLimit)
	if err != nil {
		return nil, err
	}
	services, err := m.PostsByType(ctx, db.TypeService, loc.String(), homeSectionLimit)
	if err != nil {
		return nil, err
	}
	videos, err := m.PostsByType(ctx, db.TypeVideo, loc.String(), homeSectionLimit)
	if err != nil {
		return nil, err
	}
	podcasts, err := m.PostsByType(ctx, db.TypePodcast, loc.String(), homeSectionLimit)
	if err != nil {
		return nil, err
	}
	upcoming, err := m.UpcomingEvents(ctx, loc.String(), 1, homeSectionLimit, OrderAsc)
	if err != nil {
		return nil, err
	}

	return &HomeData{
		Heroes:     m.Heroes(ctx, loc.String()),
		BlogPosts:  blog,
		Services:   services,
		Events:     upcoming.Events,
		Videos:     videos,
		Podcasts:   podcasts,
		Faqs:       m.Faqs(ctx, loc.String()),
		Categories: m.Categories(ctx, "", loc.String()),
		Settings:   m.Settings(ctx, loc.String()),
	}, nil
}

// ContentPage retrieves one published static page by slug; ErrNotFound
// when absent or unpublished.
func (m *Manager) ContentPage(ctx context.Context, slug string) (*ContentPage, error) {
	key := cachekeys.Key("content-page", slug)
	tags := []string{
		cachekeys.ContentPageTag(slug),
		cachekeys.ContentPagesTag(),
	}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) (*ContentPage, error) {
		row, err := m.db.ContentPageBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("db get content page: %w", err)
		}
		if row == nil {
			return nil, ErrNotFound
		}
		page := NewContentPage(*row)
		return &page, nil
	})
}

// ContentPages lists all published static pages, most recently updated
// first.
func (m *Manager) ContentPages(ctx context.Context) ([]ContentPage, error) {
	key := cachekeys.Key("content-pages")
	tags := []string{cachekeys.ContentPagesTag()}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) ([]ContentPage, error) {
		rows, err := m.db.ContentPages(ctx)
		if err != nil {
			return nil, fmt.Errorf("db get content pages: %w", err)
		}
		return Map(rows, NewContentPage), nil
	})
}

// ContentPageGroups groups the published pages by their fixed category,
// in the canonical category order, with navigation labels.
func (m *Manager) ContentPageGroups(ctx context.Context) ([]ContentPageGroup, error) {
	pages, err := m.ContentPages(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]ContentPage)
	for _, page := range pages {
		byCategory[page.Category] = append(byCategory[page.Category], page)
	}

	groups := make([]ContentPageGroup, 0, len(byCategory))
	for _, category := range db.PageCategories {
		categoryPages, ok := byCategory[category]
		if !ok {
			continue
		}
		label := content.CategoryLabels[category]
		groups = append(groups, ContentPageGroup{
			Category:    category,
			Label:       label.Label,
			Description: label.Description,
			Pages:       categoryPages,
		})
	}

	return groups, nil
}

// DefaultSettings is the hard-coded fallback used when a locale has no
// settings row or the query fails.
func DefaultSettings(locale i18n.Locale) Settings {
	return Settings{
		Locale:          locale.String(),
		SiteName:        "TARF Akademi",
		SiteDescription: "Bilim, teknoloji ve irfanı bir araya getiren çok katmanlı eğitim ve üretim ekosistemi.",
		ContactEmail:    "iletisim@tarf.org",
		ContactPhone:    "+90 212 000 00 00",
		ContactAddress:  "İstanbul, Türkiye",
	}
}

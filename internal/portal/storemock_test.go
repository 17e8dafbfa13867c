package portal

import (
	"context"
	"time"

	"github.com/tarfakademi/portal/internal/db"
)

// storeMock implements db.Store with overridable func fields. Methods
// without an override return zero values, so non-critical sections
// simply come back empty in tests that do not care about them.
type storeMock struct {
	postsByTypeFn   func(ctx context.Context, postType, locale string, limit int) ([]db.Post, error)
	postBySlugFn    func(ctx context.Context, postType, slug, locale string) (*db.Post, error)
	relatedPostsFn  func(ctx context.Context, postType, locale, excludeID string, limit int) ([]db.Post, error)
	searchPostsFn   func(ctx context.Context, locale, query string, limit int) ([]db.Post, error)
	categoriesFn    func(ctx context.Context, postType, locale string) ([]db.Category, error)
	settingFn       func(ctx context.Context, locale string) (*db.Setting, error)
	heroesFn        func(ctx context.Context, locale string) ([]db.Hero, error)
	faqsFn          func(ctx context.Context, locale string) ([]db.Faq, error)
	contentPageFn   func(ctx context.Context, slug string) (*db.ContentPage, error)
	contentPagesFn  func(ctx context.Context) ([]db.ContentPage, error)
	upcomingFn      func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error)
	upcomingCountFn func(ctx context.Context, locale string, todayStart time.Time) (int, error)
	pastFn          func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error)
	pastCountFn     func(ctx context.Context, locale string, todayStart time.Time) (int, error)
	undatedFn       func(ctx context.Context, locale string, limit, offset int) ([]db.Post, error)
	undatedCountFn  func(ctx context.Context, locale string) (int, error)
}

func (m *storeMock) Ping(ctx context.Context) error { return nil }
func (m *storeMock) Close() error                   { return nil }

func (m *storeMock) PostsByType(ctx context.Context, postType, locale string, limit int) ([]db.Post, error) {
	if m.postsByTypeFn == nil {
		return nil, nil
	}
	return m.postsByTypeFn(ctx, postType, locale, limit)
}

func (m *storeMock) PostBySlug(ctx context.Context, postType, slug, locale string) (*db.Post, error) {
	if m.postBySlugFn == nil {
		return nil, nil
	}
	return m.postBySlugFn(ctx, postType, slug, locale)
}

func (m *storeMock) RelatedPosts(ctx context.Context, postType, locale, excludeID string, limit int) ([]db.Post, error) {
	if m.relatedPostsFn == nil {
		return nil, nil
	}
	return m.relatedPostsFn(ctx, postType, locale, excludeID, limit)
}

func (m *storeMock) SearchPosts(ctx context.Context, locale, query string, limit int) ([]db.Post, error) {
	if m.searchPostsFn == nil {
		return nil, nil
	}
	return m.searchPostsFn(ctx, locale, query, limit)
}

func (m *storeMock) Categories(ctx context.Context, postType, locale string) ([]db.Category, error) {
	if m.categoriesFn == nil {
		return nil, nil
	}
	return m.categoriesFn(ctx, postType, locale)
}

func (m *storeMock) SettingByLocale(ctx context.Context, locale string) (*db.Setting, error) {
	if m.settingFn == nil {
		return nil, nil
	}
	return m.settingFn(ctx, locale)
}

func (m *storeMock) Heroes(ctx context.Context, locale string) ([]db.Hero, error) {
	if m.heroesFn == nil {
		return nil, nil
	}
	return m.heroesFn(ctx, locale)
}

func (m *storeMock) Faqs(ctx context.Context, locale string) ([]db.Faq, error) {
	if m.faqsFn == nil {
		return nil, nil
	}
	return m.faqsFn(ctx, locale)
}

func (m *storeMock) ContentPageBySlug(ctx context.Context, slug string) (*db.ContentPage, error) {
	if m.contentPageFn == nil {
		return nil, nil
	}
	return m.contentPageFn(ctx, slug)
}

func (m *storeMock) ContentPages(ctx context.Context) ([]db.ContentPage, error) {
	if m.contentPagesFn == nil {
		return nil, nil
	}
	return m.contentPagesFn(ctx)
}

func (m *storeMock) UpcomingEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
	if m.upcomingFn == nil {
		return nil, nil
	}
	return m.upcomingFn(ctx, locale, todayStart, asc, limit, offset)
}

func (m *storeMock) UpcomingEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error) {
	if m.upcomingCountFn == nil {
		return 0, nil
	}
	return m.upcomingCountFn(ctx, locale, todayStart)
}

func (m *storeMock) PastEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
	if m.pastFn == nil {
		return nil, nil
	}
	return m.pastFn(ctx, locale, todayStart, asc, limit, offset)
}

func (m *storeMock) PastEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error) {
	if m.pastCountFn == nil {
		return 0, nil
	}
	return m.pastCountFn(ctx, locale, todayStart)
}

func (m *storeMock) UndatedEvents(ctx context.Context, locale string, limit, offset int) ([]db.Post, error) {
	if m.undatedFn == nil {
		return nil, nil
	}
	return m.undatedFn(ctx, locale, limit, offset)
}

func (m *storeMock) UndatedEventsCount(ctx context.Context, locale string) (int, error) {
	if m.undatedCountFn == nil {
		return 0, nil
	}
	return m.undatedCountFn(ctx, locale)
}

// Admin methods are never reached from the read path.

func (m *storeMock) PostsFiltered(ctx context.Context, filter db.PostFilter) ([]db.Post, error) {
	return nil, nil
}

func (m *storeMock) PostsFilteredCount(ctx context.Context, filter db.PostFilter) (int, error) {
	return 0, nil
}

func (m *storeMock) PostByID(ctx context.Context, id string) (*db.Post, error) { return nil, nil }

func (m *storeMock) PostAnyStatus(ctx context.Context, postType, slug, locale string) (*db.Post, error) {
	return nil, nil
}

func (m *storeMock) CreatePost(ctx context.Context, post *db.Post) error            { return nil }
func (m *storeMock) UpdatePost(ctx context.Context, post *db.Post) error            { return nil }
func (m *storeMock) DeletePost(ctx context.Context, id string) error                { return nil }
func (m *storeMock) UpsertSetting(ctx context.Context, setting *db.Setting) error   { return nil }
func (m *storeMock) UpsertHero(ctx context.Context, hero *db.Hero) error            { return nil }
func (m *storeMock) CreateFaq(ctx context.Context, faq *db.Faq) error               { return nil }
func (m *storeMock) FaqByID(ctx context.Context, id string) (*db.Faq, error)        { return nil, nil }
func (m *storeMock) UpdateFaq(ctx context.Context, faq *db.Faq) error               { return nil }
func (m *storeMock) DeleteFaq(ctx context.Context, id string) error                 { return nil }
func (m *storeMock) CreateCategory(ctx context.Context, category *db.Category) error { return nil }
func (m *storeMock) CategoryByID(ctx context.Context, id string) (*db.Category, error) {
	return nil, nil
}
func (m *storeMock) UpdateCategory(ctx context.Context, category *db.Category) error { return nil }
func (m *storeMock) DeleteCategory(ctx context.Context, id string) error            { return nil }
func (m *storeMock) UpsertContentPage(ctx context.Context, page *db.ContentPage) error {
	return nil
}

var _ db.Store = (*storeMock)(nil)

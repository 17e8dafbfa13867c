package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}

// IsUniqueViolation reports whether err was caused by a unique
// constraint, e.g. a duplicate (slug, type, locale).
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

// IsNotFound reports whether err means the targeted row does not
// exist, so callers outside this package need not import the driver.
func IsNotFound(err error) bool {
	return errors.Is(err, pg.ErrNoRows)
}

// PostsByType retrieves published posts of one type for a locale,
// newest published first. A limit <= 0 means no limit.
func (r *Repository) PostsByType(ctx context.Context, postType, locale string, limit int) ([]Post, error) {
	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."type" = ?`, postType).
		Where(`"t"."locale" = ?`, locale).
		Where(`"t"."status" = ?`, StatusPublished).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostBySlug retrieves a single published post. Returns nil without an
// error when no published post matches.
func (r *Repository) PostBySlug(ctx context.Context, postType, slug, locale string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Category").
		Where(`"t"."type" = ?`, postType).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."locale" = ?`, locale).
		Where(`"t"."status" = ?`, StatusPublished).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// RelatedPosts retrieves the newest published posts of the same type and
// locale, excluding the given post.
func (r *Repository) RelatedPosts(ctx context.Context, postType, locale, excludeID string, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."type" = ?`, postType).
		Where(`"t"."locale" = ?`, locale).
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."id" != ?`, excludeID).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query related posts: %w", err)
	}

	return posts, nil
}

// SearchPosts runs a case-insensitive substring match over title,
// excerpt and content of published posts in the locale.
func (r *Repository) SearchPosts(ctx context.Context, locale, query string, limit int) ([]Post, error) {
	pattern := "%" + query + "%"

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."locale" = ?`, locale).
		Where(`"t"."status" = ?`, StatusPublished).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern), nil
		}).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) eventsQuery(ctx context.Context, model any, locale string) *pg.Query {
	return r.db.ModelContext(ctx, model).
		Where(`"t"."type" = ?`, TypeEvent).
		Where(`"t"."locale" = ?`, locale).
		Where(`"t"."status" = ?`, StatusPublished)
}

// UpcomingEvents retrieves published events with event_date on or after
// todayStart. The boundary is inclusive: an event dated exactly
// todayStart is upcoming. Secondary sort by event_time, tertiary by
// updated_at so same-day events stay stable.
func (r *Repository) UpcomingEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]Post, error) {
	dir := "DESC"
	if asc {
		dir = "ASC"
	}

	var posts []Post
	err := r.eventsQuery(ctx, &posts, locale).
		Relation("Category").
		Where(`"t"."event_date" >= ?`, todayStart).
		OrderExpr(fmt.Sprintf(`"t"."event_date" %s, "t"."event_time" ASC NULLS LAST, "t"."updated_at" DESC`, dir)).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}

	return posts, nil
}

func (r *Repository) UpcomingEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error) {
	count, err := r.eventsQuery(ctx, (*Post)(nil), locale).
		Where(`"t"."event_date" >= ?`, todayStart).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	return count, nil
}

// PastEvents retrieves published events strictly before todayStart. The
// event_time sort direction mirrors the event_date direction.
func (r *Repository) PastEvents(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]Post, error) {
	dir := "DESC"
	if asc {
		dir = "ASC"
	}

	var posts []Post
	err := r.eventsQuery(ctx, &posts, locale).
		Relation("Category").
		Where(`"t"."event_date" < ?`, todayStart).
		OrderExpr(fmt.Sprintf(`"t"."event_date" %s, "t"."event_time" %s NULLS LAST, "t"."updated_at" DESC`, dir, dir)).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query past events: %w", err)
	}

	return posts, nil
}

func (r *Repository) PastEventsCount(ctx context.Context, locale string, todayStart time.Time) (int, error) {
	count, err := r.eventsQuery(ctx, (*Post)(nil), locale).
		Where(`"t"."event_date" < ?`, todayStart).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count past events: %w", err)
	}
	return count, nil
}

// UndatedEvents retrieves published events with no event_date, most
// recently updated first.
func (r *Repository) UndatedEvents(ctx context.Context, locale string, limit, offset int) ([]Post, error) {
	var posts []Post
	err := r.eventsQuery(ctx, &posts, locale).
		Relation("Category").
		Where(`"t"."event_date" IS NULL`).
		OrderExpr(`"t"."updated_at" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query undated events: %w", err)
	}

	return posts, nil
}

func (r *Repository) UndatedEventsCount(ctx context.Context, locale string) (int, error) {
	count, err := r.eventsQuery(ctx, (*Post)(nil), locale).
		Where(`"t"."event_date" IS NULL`).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count undated events: %w", err)
	}
	return count, nil
}

// Categories retrieves categories for a locale ordered by name. An
// empty postType returns every type.
func (r *Repository) Categories(ctx context.Context, postType, locale string) ([]Category, error) {
	var categories []Category
	query := r.db.ModelContext(ctx, &categories).
		Where(`"t"."locale" = ?`, locale).
		OrderExpr(`"t"."name" ASC`)

	if postType != "" {
		query = query.Where(`"t"."type" = ?`, postType)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// SettingByLocale returns nil without an error when no row exists for
// the locale; the caller substitutes defaults.
func (r *Repository) SettingByLocale(ctx context.Context, locale string) (*Setting, error) {
	setting := &Setting{}
	err := r.db.ModelContext(ctx, setting).
		Where(`"t"."locale" = ?`, locale).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return setting, nil
}

// Heroes retrieves heroes for a locale, most recently created first, so
// callers can take the head as the current hero.
func (r *Repository) Heroes(ctx context.Context, locale string) ([]Hero, error) {
	var heroes []Hero
	err := r.db.ModelContext(ctx, &heroes).
		Where(`"t"."locale" = ?`, locale).
		OrderExpr(`"t"."created_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query heroes: %w", err)
	}

	return heroes, nil
}

func (r *Repository) Faqs(ctx context.Context, locale string) ([]Faq, error) {
	var faqs []Faq
	err := r.db.ModelContext(ctx, &faqs).
		Where(`"t"."locale" = ?`, locale).
		OrderExpr(`"t"."sort_order" ASC, "t"."created_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}

	return faqs, nil
}

// ContentPageBySlug retrieves a published content page. Returns nil
// without an error when the page is absent or unpublished.
func (r *Repository) ContentPageBySlug(ctx context.Context, slug string) (*ContentPage, error) {
	page := &ContentPage{}
	err := r.db.ModelContext(ctx, page).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."published_at" IS NOT NULL`).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get content page: %w", err)
	}

	return page, nil
}

func (r *Repository) ContentPages(ctx context.Context) ([]ContentPage, error) {
	var pages []ContentPage
	err := r.db.ModelContext(ctx, &pages).
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."published_at" IS NOT NULL`).
		OrderExpr(`"t"."updated_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query content pages: %w", err)
	}

	return pages, nil
}

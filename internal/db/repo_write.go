package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// PostFilter narrows the admin post listing. Zero values mean
// "no filter" for every field.
type PostFilter struct {
	Type       string
	Status     string
	CategoryID string
	Locale     string
	Query      string
	Limit      int
	Offset     int
}

func applyPostFilter(q *pg.Query, f PostFilter) *pg.Query {
	if f.Type != "" {
		q = q.Where(`"t"."type" = ?`, f.Type)
	}
	if f.Status != "" {
		q = q.Where(`"t"."status" = ?`, f.Status)
	}
	if f.CategoryID != "" {
		q = q.Where(`"t"."category_id" = ?`, f.CategoryID)
	}
	if f.Locale != "" {
		q = q.Where(`"t"."locale" = ?`, f.Locale)
	}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern), nil
		})
	}
	return q
}

// PostsFiltered retrieves posts of any status for the admin listing,
// most recently updated first.
func (r *Repository) PostsFiltered(ctx context.Context, filter PostFilter) ([]Post, error) {
	var posts []Post
	query := applyPostFilter(r.db.ModelContext(ctx, &posts).Relation("Category"), filter).
		OrderExpr(`"t"."updated_at" DESC`)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query filtered posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostsFilteredCount(ctx context.Context, filter PostFilter) (int, error) {
	filter.Limit, filter.Offset = 0, 0
	count, err := applyPostFilter(r.db.ModelContext(ctx, (*Post)(nil)), filter).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count filtered posts: %w", err)
	}
	return count, nil
}

// PostByID retrieves a post of any status.
func (r *Repository) PostByID(ctx context.Context, id string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// PostAnyStatus looks a post up by its unique (slug, type, locale) key
// regardless of status. The admin update path uses it with the original
// slug so slug edits find the existing row; create uses it as the
// conflict check.
func (r *Repository) PostAnyStatus(ctx context.Context, postType, slug, locale string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."type" = ?`, postType).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."locale" = ?`, locale).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by type and slug: %w", err)
	}

	return post, nil
}

func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *Post) error {
	result, err := r.db.ModelContext(ctx, post).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, id string) error {
	result, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) UpsertSetting(ctx context.Context, setting *Setting) error {
	_, err := r.db.ModelContext(ctx, setting).
		OnConflict(`(locale) DO UPDATE`).
		Set(`site_name = EXCLUDED.site_name`).
		Set(`site_description = EXCLUDED.site_description`).
		Set(`contact_email = EXCLUDED.contact_email`).
		Set(`contact_phone = EXCLUDED.contact_phone`).
		Set(`contact_address = EXCLUDED.contact_address`).
		Set(`contact_map_url = EXCLUDED.contact_map_url`).
		Set(`social = EXCLUDED.social`).
		Set(`contact_content = EXCLUDED.contact_content`).
		Set(`updated_at = EXCLUDED.updated_at`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

func (r *Repository) UpsertHero(ctx context.Context, hero *Hero) error {
	_, err := r.db.ModelContext(ctx, hero).
		OnConflict(`(id) DO UPDATE`).
		Set(`locale = EXCLUDED.locale`).
		Set(`title = EXCLUDED.title`).
		Set(`subtitle = EXCLUDED.subtitle`).
		Set(`description = EXCLUDED.description`).
		Set(`slides = EXCLUDED.slides`).
		Set(`button_text = EXCLUDED.button_text`).
		Set(`button_url = EXCLUDED.button_url`).
		Set(`background_image = EXCLUDED.background_image`).
		Set(`video_url = EXCLUDED.video_url`).
		Set(`video_cover = EXCLUDED.video_cover`).
		Set(`video_url_2 = EXCLUDED.video_url_2`).
		Set(`video_cover_2 = EXCLUDED.video_cover_2`).
		Set(`video_url_3 = EXCLUDED.video_url_3`).
		Set(`video_url_4 = EXCLUDED.video_url_4`).
		Set(`video_url_5 = EXCLUDED.video_url_5`).
		Set(`updated_at = EXCLUDED.updated_at`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to upsert hero: %w", err)
	}
	return nil
}

func (r *Repository) CreateFaq(ctx context.Context, faq *Faq) error {
	if _, err := r.db.ModelContext(ctx, faq).Insert(); err != nil {
		return fmt.Errorf("failed to insert faq: %w", err)
	}
	return nil
}

// FaqByID retrieves a FAQ regardless of locale.
func (r *Repository) FaqByID(ctx context.Context, id string) (*Faq, error) {
	faq := &Faq{}
	err := r.db.ModelContext(ctx, faq).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get faq by id: %w", err)
	}

	return faq, nil
}

func (r *Repository) UpdateFaq(ctx context.Context, faq *Faq) error {
	result, err := r.db.ModelContext(ctx, faq).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteFaq(ctx context.Context, id string) error {
	result, err := r.db.ModelContext(ctx, (*Faq)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// CategoryByID retrieves a category regardless of type or locale.
func (r *Repository) CategoryByID(ctx context.Context, id string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	result, err := r.db.ModelContext(ctx, category).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}
	return nil
}

func (r *Repository) UpsertContentPage(ctx context.Context, page *ContentPage) error {
	_, err := r.db.ModelContext(ctx, page).
		OnConflict(`(slug) DO UPDATE`).
		Set(`category = EXCLUDED.category`).
		Set(`title = EXCLUDED.title`).
		Set(`seo_title = EXCLUDED.seo_title`).
		Set(`seo_description = EXCLUDED.seo_description`).
		Set(`data = EXCLUDED.data`).
		Set(`status = EXCLUDED.status`).
		Set(`published_at = EXCLUDED.published_at`).
		Set(`updated_at = EXCLUDED.updated_at`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to upsert content page: %w", err)
	}
	return nil
}

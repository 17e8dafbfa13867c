// Package admin is the mutation layer: validated create, update and
// delete operations on every content entity, paired with the cache
// invalidation the read path depends on. Every successful write
// invalidates the tags covering the rows it touched; a write that
// skips invalidation would leave stale pages cached for up to an hour.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tarfakademi/portal/internal/cache"
	"github.com/tarfakademi/portal/internal/cachekeys"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/i18n"
)

var (
	ErrNotFound  = errors.New("admin: not found")
	ErrSlugTaken = errors.New("admin: slug already in use")
)

// ValidationError carries the field-level failures of one input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("admin: validation failed on %d field(s)", len(e.Fields))
}

// Store is the persistence surface the mutation layer needs.
// *db.Repository satisfies it.
type Store interface {
	PostsFiltered(ctx context.Context, filter db.PostFilter) ([]db.Post, error)
	PostsFilteredCount(ctx context.Context, filter db.PostFilter) (int, error)
	PostByID(ctx context.Context, id string) (*db.Post, error)
	PostAnyStatus(ctx context.Context, postType, slug, locale string) (*db.Post, error)
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post) error
	DeletePost(ctx context.Context, id string) error
	UpsertSetting(ctx context.Context, setting *db.Setting) error
	UpsertHero(ctx context.Context, hero *db.Hero) error
	CreateFaq(ctx context.Context, faq *db.Faq) error
	FaqByID(ctx context.Context, id string) (*db.Faq, error)
	UpdateFaq(ctx context.Context, faq *db.Faq) error
	DeleteFaq(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, category *db.Category) error
	CategoryByID(ctx context.Context, id string) (*db.Category, error)
	UpdateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, id string) error
	UpsertContentPage(ctx context.Context, page *db.ContentPage) error
}

type Manager struct {
	db       Store
	cache    cache.Cache
	log      *slog.Logger
	validate *validator.Validate

	now func() time.Time
}

func NewManager(store Store, c cache.Cache, logger *slog.Logger) *Manager {
	return &Manager{
		db:       store,
		cache:    c,
		log:      logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// check runs struct validation and converts failures into a
// ValidationError keyed by field name.
func (m *Manager) check(input any) error {
	err := m.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	fields := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// invalidate drops the given cache tags, logging rather than failing:
// the write already committed, and every entry also carries a TTL.
func (m *Manager) invalidate(ctx context.Context, tags ...string) {
	if err := m.cache.Invalidate(ctx, tags...); err != nil {
		m.log.Error("cache invalidation failed", "tags", tags, "error", err)
	}
}

// PostInput is the payload for creating or updating a post. EventDate
// is a bare date; EventTime a 24h clock time.
type PostInput struct {
	Type           string   `json:"type" validate:"required,oneof=blog event video podcast service"`
	Slug           string   `json:"slug" validate:"required,max=200"`
	Locale         string   `json:"locale" validate:"required,oneof=tr en ar"`
	Title          string   `json:"title" validate:"required,max=300"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content"`
	ContentRaw     *string  `json:"content_raw"`
	FeaturedImage  *string  `json:"featured_image"`
	SeoTitle       *string  `json:"seo_title"`
	SeoDescription *string  `json:"seo_description"`
	OgImage        *string  `json:"og_image"`
	YoutubeURL     *string  `json:"youtube_url" validate:"required_if=Type video"`
	AudioURL       *string  `json:"audio_url"`
	EventDate      string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime      string   `json:"event_time" validate:"omitempty,datetime=15:04"`
	Location       *string  `json:"location"`
	Gallery        []string `json:"gallery"`
	Status         string   `json:"status" validate:"required,oneof=draft published"`
	CategoryID     *string  `json:"category_id"`
}

// toRow maps the input onto a row, leaving identity and publication
// bookkeeping to the caller.
func (in PostInput) toRow(now time.Time) db.Post {
	post := db.Post{
		Type:           in.Type,
		Slug:           in.Slug,
		Locale:         in.Locale,
		Title:          in.Title,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		ContentRaw:     in.ContentRaw,
		FeaturedImage:  in.FeaturedImage,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		OgImage:        in.OgImage,
		YoutubeURL:     in.YoutubeURL,
		AudioURL:       in.AudioURL,
		Location:       in.Location,
		Status:         in.Status,
		CategoryID:     in.CategoryID,
		UpdatedAt:      now,
	}

	if in.EventDate != "" {
		// Validated above; stored as UTC midnight so partition
		// comparisons stay date-only.
		date, _ := time.Parse("2006-01-02", in.EventDate)
		post.EventDate = &date
	}
	if in.EventTime != "" {
		eventTime := in.EventTime
		post.EventTime = &eventTime
	}
	if len(in.Gallery) > 0 {
		gallery := make([]any, len(in.Gallery))
		for i, item := range in.Gallery {
			gallery[i] = item
		}
		post.Meta = map[string]any{"gallery": gallery}
	}

	return post
}

func postTags(post *db.Post) []string {
	locale := i18n.Normalize(post.Locale)
	return []string{
		cachekeys.PostsTag(post.Type, locale),
		cachekeys.PostTag(post.Type, locale, post.Slug),
		cachekeys.CategoriesTag(locale, post.Type),
	}
}

// CreatePost validates, assigns an id, stamps publication and writes a
// new post. The (slug, type) pair must be free across every status.
func (m *Manager) CreatePost(ctx context.Context, input PostInput) (*db.Post, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	existing, err := m.db.PostAnyStatus(ctx, input.Type, input.Slug, input.Locale)
	if err != nil {
		return nil, fmt.Errorf("db check slug: %w", err)
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	now := m.now()
	post := input.toRow(now)
	post.ID = uuid.NewString()
	post.CreatedAt = now
	if post.Status == db.StatusPublished {
		post.PublishedAt = &now
	}

	if err := m.db.CreatePost(ctx, &post); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("db create post: %w", err)
	}

	m.invalidate(ctx, postTags(&post)...)
	m.log.Info("post created", "id", post.ID, "type", post.Type, "slug", post.Slug)
	return &post, nil
}

// UpdatePost validates and rewrites an existing post. The original
// publication timestamp survives the update; it is only set when a
// draft is published for the first time. Tags for the previous slug
// and locale are invalidated as well so a rename cannot leave the old
// detail page cached.
func (m *Manager) UpdatePost(ctx context.Context, id string, input PostInput) (*db.Post, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	current, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if input.Slug != current.Slug || input.Type != current.Type || input.Locale != current.Locale {
		existing, err := m.db.PostAnyStatus(ctx, input.Type, input.Slug, input.Locale)
		if err != nil {
			return nil, fmt.Errorf("db check slug: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrSlugTaken
		}
	}

	now := m.now()
	post := input.toRow(now)
	post.ID = id
	post.CreatedAt = current.CreatedAt
	post.PublishedAt = current.PublishedAt
	if post.Status == db.StatusPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if err := m.db.UpdatePost(ctx, &post); err != nil {
		if db.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("db update post: %w", err)
	}

	tags := postTags(&post)
	if current.Slug != post.Slug || current.Locale != post.Locale || current.Type != post.Type {
		tags = append(tags, postTags(current)...)
	}
	m.invalidate(ctx, tags...)
	m.log.Info("post updated", "id", post.ID, "type", post.Type, "slug", post.Slug)
	return &post, nil
}

// DeletePost removes a post and invalidates its tags.
func (m *Manager) DeletePost(ctx context.Context, id string) error {
	current, err := m.db.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get post: %w", err)
	}
	if current == nil {
		return ErrNotFound
	}

	if err := m.db.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}

	m.invalidate(ctx, postTags(current)...)
	m.log.Info("post deleted", "id", id, "type", current.Type, "slug", current.Slug)
	return nil
}

// DefaultListingSize is the admin table page size.
const DefaultListingSize = 15

// PostListing is one page of the admin post table.
type PostListing struct {
	Posts []db.Post `json:"posts"`
	Page  int       `json:"page"`
	Total int       `json:"total"`
}

// ListPosts pages through posts of any status, most recently updated
// first, narrowed by the filter's optional fields.
func (m *Manager) ListPosts(ctx context.Context, filter db.PostFilter, page int) (*PostListing, error) {
	if page < 1 {
		page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListingSize
	}
	filter.Offset = (page - 1) * filter.Limit

	total, err := m.db.PostsFilteredCount(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db count posts: %w", err)
	}
	posts, err := m.db.PostsFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db list posts: %w", err)
	}

	return &PostListing{Posts: posts, Page: page, Total: total}, nil
}

// GetPost retrieves one post of any status by id.
func (m *Manager) GetPost(ctx context.Context, id string) (*db.Post, error) {
	post, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

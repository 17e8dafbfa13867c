package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tarfakademi/portal/internal/cachekeys"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/i18n"
)

type SettingsInput struct {
	Locale          string         `json:"locale" validate:"required,oneof=tr en ar"`
	SiteName        string         `json:"site_name" validate:"required,max=200"`
	SiteDescription string         `json:"site_description"`
	ContactEmail    string         `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string         `json:"contact_phone"`
	ContactAddress  string         `json:"contact_address"`
	ContactMapURL   *string        `json:"contact_map_url" validate:"omitempty,url"`
	Social          map[string]any `json:"social"`
	ContactContent  map[string]any `json:"contact_content"`
}

// SaveSettings upserts the per-locale settings row.
func (m *Manager) SaveSettings(ctx context.Context, input SettingsInput) (*db.Setting, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	setting := db.Setting{
		Locale:          input.Locale,
		SiteName:        input.SiteName,
		SiteDescription: input.SiteDescription,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		ContactAddress:  input.ContactAddress,
		ContactMapURL:   input.ContactMapURL,
		Social:          input.Social,
		ContactContent:  input.ContactContent,
		UpdatedAt:       m.now(),
	}
	if err := m.db.UpsertSetting(ctx, &setting); err != nil {
		return nil, fmt.Errorf("db upsert settings: %w", err)
	}

	m.invalidate(ctx, cachekeys.SettingsTag(i18n.Normalize(setting.Locale)))
	m.log.Info("settings saved", "locale", setting.Locale)
	return &setting, nil
}

type HeroInput struct {
	ID              string  `json:"id"`
	Locale          string  `json:"locale" validate:"required,oneof=tr en ar"`
	Title           string  `json:"title" validate:"required,max=300"`
	Subtitle        string  `json:"subtitle"`
	Description     string  `json:"description"`
	Slides          []any   `json:"slides"`
	ButtonText      string  `json:"button_text"`
	ButtonURL       string  `json:"button_url"`
	BackgroundImage string  `json:"background_image"`
	VideoURL        *string `json:"video_url"`
	VideoCover      *string `json:"video_cover"`
	VideoURL2       *string `json:"video_url_2"`
	VideoCover2     *string `json:"video_cover_2"`
	VideoURL3       *string `json:"video_url_3"`
	VideoURL4       *string `json:"video_url_4"`
	VideoURL5       *string `json:"video_url_5"`
}

// SaveHero upserts a hero. Without an explicit id the locale's default
// hero slot ("hero-<locale>") is written, so each locale keeps a
// stable primary hero.
func (m *Manager) SaveHero(ctx context.Context, input HeroInput) (*db.Hero, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = "hero-" + input.Locale
	}

	now := m.now()
	hero := db.Hero{
		ID:              id,
		Locale:          input.Locale,
		Title:           input.Title,
		Subtitle:        input.Subtitle,
		Description:     input.Description,
		Slides:          input.Slides,
		ButtonText:      input.ButtonText,
		ButtonURL:       input.ButtonURL,
		BackgroundImage: input.BackgroundImage,
		VideoURL:        input.VideoURL,
		VideoCover:      input.VideoCover,
		VideoURL2:       input.VideoURL2,
		VideoCover2:     input.VideoCover2,
		VideoURL3:       input.VideoURL3,
		VideoURL4:       input.VideoURL4,
		VideoURL5:       input.VideoURL5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := m.db.UpsertHero(ctx, &hero); err != nil {
		return nil, fmt.Errorf("db upsert hero: %w", err)
	}

	m.invalidate(ctx, cachekeys.HeroesTag(i18n.Normalize(hero.Locale)))
	m.log.Info("hero saved", "id", hero.ID, "locale", hero.Locale)
	return &hero, nil
}

type FaqInput struct {
	Locale    string `json:"locale" validate:"required,oneof=tr en ar"`
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

func (m *Manager) CreateFaq(ctx context.Context, input FaqInput) (*db.Faq, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	faq := db.Faq{
		ID:        uuid.NewString(),
		Locale:    input.Locale,
		Question:  input.Question,
		Answer:    input.Answer,
		SortOrder: input.SortOrder,
		CreatedAt: m.now(),
	}
	if err := m.db.CreateFaq(ctx, &faq); err != nil {
		return nil, fmt.Errorf("db create faq: %w", err)
	}

	m.invalidate(ctx, cachekeys.FaqsTag(i18n.Normalize(faq.Locale)))
	m.log.Info("faq created", "id", faq.ID, "locale", faq.Locale)
	return &faq, nil
}

// UpdateFaq rewrites a FAQ. The creation time is carried over from the
// stored row; it is part of the public ordering and an update must not
// reset it.
func (m *Manager) UpdateFaq(ctx context.Context, id string, input FaqInput) (*db.Faq, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	current, err := m.db.FaqByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get faq: %w", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	faq := db.Faq{
		ID:        id,
		Locale:    input.Locale,
		Question:  input.Question,
		Answer:    input.Answer,
		SortOrder: input.SortOrder,
		CreatedAt: current.CreatedAt,
	}
	if err := m.db.UpdateFaq(ctx, &faq); err != nil {
		if db.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db update faq: %w", err)
	}

	tags := []string{cachekeys.FaqsTag(i18n.Normalize(faq.Locale))}
	if current.Locale != faq.Locale {
		tags = append(tags, cachekeys.FaqsTag(i18n.Normalize(current.Locale)))
	}
	m.invalidate(ctx, tags...)
	m.log.Info("faq updated", "id", faq.ID)
	return &faq, nil
}

// DeleteFaq removes a FAQ. The locale is unknown after deletion, so
// every locale's FAQ tag is dropped.
func (m *Manager) DeleteFaq(ctx context.Context, id string) error {
	if err := m.db.DeleteFaq(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("db delete faq: %w", err)
	}

	tags := make([]string, 0, len(i18n.Supported))
	for _, locale := range i18n.Supported {
		tags = append(tags, cachekeys.FaqsTag(locale))
	}
	m.invalidate(ctx, tags...)
	m.log.Info("faq deleted", "id", id)
	return nil
}

type CategoryInput struct {
	Name   string `json:"name" validate:"required,max=200"`
	Slug   string `json:"slug" validate:"required,max=200"`
	Type   string `json:"type" validate:"required,oneof=blog event video podcast service"`
	Locale string `json:"locale" validate:"required,oneof=tr en ar"`
}

func categoryTags(c *db.Category) []string {
	locale := i18n.Normalize(c.Locale)
	return []string{
		cachekeys.CategoriesTag(locale, c.Type),
		cachekeys.CategoriesTag(locale, ""),
	}
}

func (m *Manager) CreateCategory(ctx context.Context, input CategoryInput) (*db.Category, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	category := db.Category{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      input.Slug,
		Type:      input.Type,
		Locale:    input.Locale,
		CreatedAt: m.now(),
	}
	if err := m.db.CreateCategory(ctx, &category); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("db create category: %w", err)
	}

	m.invalidate(ctx, categoryTags(&category)...)
	m.log.Info("category created", "id", category.ID, "slug", category.Slug)
	return &category, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*db.Category, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	current, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	category := db.Category{
		ID:        id,
		Name:      input.Name,
		Slug:      input.Slug,
		Type:      input.Type,
		Locale:    input.Locale,
		CreatedAt: current.CreatedAt,
	}
	if err := m.db.UpdateCategory(ctx, &category); err != nil {
		if db.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("db update category: %w", err)
	}

	tags := categoryTags(&category)
	if current.Locale != category.Locale || current.Type != category.Type {
		tags = append(tags, categoryTags(current)...)
	}
	m.invalidate(ctx, tags...)
	m.log.Info("category updated", "id", category.ID)
	return &category, nil
}

// DeleteCategory removes a category. Posts referencing it keep
// working; the relation is simply absent afterwards. All category tags
// are dropped since the row's locale and type are gone.
func (m *Manager) DeleteCategory(ctx context.Context, id string) error {
	if err := m.db.DeleteCategory(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("db delete category: %w", err)
	}

	tags := make([]string, 0, len(i18n.Supported)*(len(db.PostTypes)+1))
	for _, locale := range i18n.Supported {
		tags = append(tags, cachekeys.CategoriesTag(locale, ""))
		for _, postType := range db.PostTypes {
			tags = append(tags, cachekeys.CategoriesTag(locale, postType))
		}
	}
	m.invalidate(ctx, tags...)
	m.log.Info("category deleted", "id", id)
	return nil
}

type ContentPageInput struct {
	Slug           string         `json:"slug" validate:"required,max=200"`
	Category       string         `json:"category" validate:"required,oneof=kurumsal dusunce akademi yazilim kulupler yayinlar yasal"`
	Title          string         `json:"title" validate:"required,max=300"`
	SeoTitle       *string        `json:"seo_title"`
	SeoDescription *string        `json:"seo_description"`
	Data           map[string]any `json:"data"`
	Status         string         `json:"status" validate:"required,oneof=draft published"`
}

// SaveContentPage upserts a static page by slug.
func (m *Manager) SaveContentPage(ctx context.Context, input ContentPageInput) (*db.ContentPage, error) {
	if err := m.check(input); err != nil {
		return nil, err
	}

	now := m.now()
	page := db.ContentPage{
		Slug:           input.Slug,
		Category:       input.Category,
		Title:          input.Title,
		SeoTitle:       input.SeoTitle,
		SeoDescription: input.SeoDescription,
		Data:           input.Data,
		Status:         input.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if page.Status == db.StatusPublished {
		page.PublishedAt = &now
	}
	if err := m.db.UpsertContentPage(ctx, &page); err != nil {
		return nil, fmt.Errorf("db upsert content page: %w", err)
	}

	m.invalidate(ctx,
		cachekeys.ContentPagesTag(),
		cachekeys.ContentPageTag(page.Slug))
	m.log.Info("content page saved", "slug", page.Slug)
	return &page, nil
}

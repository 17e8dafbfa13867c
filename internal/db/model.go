package db

import (
	"time"
)

// Post types. A post's type never changes after creation.
const (
	TypeBlog    = "blog"
	TypeEvent   = "event"
	TypeVideo   = "video"
	TypePodcast = "podcast"
	TypeService = "service"
)

// Publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// PostTypes lists every valid post type.
var PostTypes = []string{TypeBlog, TypeEvent, TypeVideo, TypePodcast, TypeService}

func IsPostType(t string) bool {
	for _, known := range PostTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Content page categories (fixed navigation groups).
const (
	PageKurumsal = "kurumsal"
	PageDusunce  = "dusunce"
	PageAkademi  = "akademi"
	PageYazilim  = "yazilim"
	PageKulupler = "kulupler"
	PageYayinlar = "yayinlar"
	PageYasal    = "yasal"
)

var PageCategories = []string{
	PageKurumsal, PageDusunce, PageAkademi, PageYazilim,
	PageKulupler, PageYayinlar, PageYasal,
}

func IsPageCategory(c string) bool {
	for _, known := range PageCategories {
		if known == c {
			return true
		}
	}
	return false
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID             string         `pg:"id,pk"`
	Type           string         `pg:"type,use_zero"`
	Slug           string         `pg:"slug,use_zero"`
	Locale         string         `pg:"locale,use_zero"`
	Title          string         `pg:"title,use_zero"`
	Excerpt        string         `pg:"excerpt,use_zero"`
	Content        string         `pg:"content,use_zero"`
	ContentRaw     *string        `pg:"content_raw"`
	FeaturedImage  *string        `pg:"featured_image"`
	SeoTitle       *string        `pg:"seo_title"`
	SeoDescription *string        `pg:"seo_description"`
	OgImage        *string        `pg:"og_image"`
	YoutubeURL     *string        `pg:"youtube_url"`
	AudioURL       *string        `pg:"audio_url"`
	EventDate      *time.Time     `pg:"event_date"`
	EventTime      *string        `pg:"event_time"`
	Location       *string        `pg:"location"`
	Meta           map[string]any `pg:"meta,type:jsonb"`
	Status         string         `pg:"status,use_zero"`
	CategoryID     *string        `pg:"category_id"`
	CreatedAt      time.Time      `pg:"created_at,use_zero"`
	UpdatedAt      time.Time      `pg:"updated_at,use_zero"`
	PublishedAt    *time.Time     `pg:"published_at"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Slug      string    `pg:"slug,use_zero"`
	Type      string    `pg:"type,use_zero"`
	Locale    string    `pg:"locale,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

// Setting holds the singleton-per-locale site configuration. The
// ContactContent bag overrides default hero/form copy on the contact
// page and is passed through untyped.
type Setting struct {
	tableName struct{} `pg:"settings,alias:t,discard_unknown_columns"`

	Locale          string         `pg:"locale,pk"`
	SiteName        string         `pg:"site_name,use_zero"`
	SiteDescription string         `pg:"site_description,use_zero"`
	ContactEmail    string         `pg:"contact_email,use_zero"`
	ContactPhone    string         `pg:"contact_phone,use_zero"`
	ContactAddress  string         `pg:"contact_address,use_zero"`
	ContactMapURL   *string        `pg:"contact_map_url"`
	Social          map[string]any `pg:"social,type:jsonb"`
	ContactContent  map[string]any `pg:"contact_content,type:jsonb"`
	UpdatedAt       time.Time      `pg:"updated_at,use_zero"`
}

type Hero struct {
	tableName struct{} `pg:"heroes,alias:t,discard_unknown_columns"`

	ID              string    `pg:"id,pk"`
	Locale          string    `pg:"locale,use_zero"`
	Title           string    `pg:"title,use_zero"`
	Subtitle        string    `pg:"subtitle,use_zero"`
	Description     string    `pg:"description,use_zero"`
	Slides          []any     `pg:"slides,type:jsonb"`
	ButtonText      string    `pg:"button_text,use_zero"`
	ButtonURL       string    `pg:"button_url,use_zero"`
	BackgroundImage string    `pg:"background_image,use_zero"`
	VideoURL        *string   `pg:"video_url"`
	VideoCover      *string   `pg:"video_cover"`
	VideoURL2       *string   `pg:"video_url_2"`
	VideoCover2     *string   `pg:"video_cover_2"`
	VideoURL3       *string   `pg:"video_url_3"`
	VideoURL4       *string   `pg:"video_url_4"`
	VideoURL5       *string   `pg:"video_url_5"`
	CreatedAt       time.Time `pg:"created_at,use_zero"`
	UpdatedAt       time.Time `pg:"updated_at,use_zero"`
}

type Faq struct {
	tableName struct{} `pg:"faqs,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Locale    string    `pg:"locale,use_zero"`
	Question  string    `pg:"question,use_zero"`
	Answer    string    `pg:"answer,use_zero"`
	SortOrder int       `pg:"sort_order,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

// ContentPage stores the admin-editable copy of a static page. The code
// definitions in internal/content are only the seed source; after
// seeding this row is authoritative.
type ContentPage struct {
	tableName struct{} `pg:"content_pages,alias:t,discard_unknown_columns"`

	Slug           string         `pg:"slug,pk"`
	Category       string         `pg:"category,use_zero"`
	Title          string         `pg:"title,use_zero"`
	SeoTitle       *string        `pg:"seo_title"`
	SeoDescription *string        `pg:"seo_description"`
	Data           map[string]any `pg:"data,type:jsonb"`
	Status         string         `pg:"status,use_zero"`
	PublishedAt    *time.Time     `pg:"published_at"`
	CreatedAt      time.Time      `pg:"created_at,use_zero"`
	UpdatedAt      time.Time      `pg:"updated_at,use_zero"`
}

package portal

// View models returned to the presentation layer. Persistence rows and
// their native date types never leak past this package: timestamps are
// ISO-8601 strings, the metadata bag is reduced to the typed Gallery
// field.

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Type   string `json:"type"`
	Locale string `json:"locale"`
}

type Post struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Slug           string    `json:"slug"`
	Locale         string    `json:"locale"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt"`
	Content        string    `json:"content"`
	ContentRaw     *string   `json:"content_raw,omitempty"`
	FeaturedImage  *string   `json:"featured_image"`
	SeoTitle       *string   `json:"seo_title,omitempty"`
	SeoDescription *string   `json:"seo_description,omitempty"`
	OgImage        *string   `json:"og_image,omitempty"`
	YoutubeURL     *string   `json:"youtube_url,omitempty"`
	AudioURL       *string   `json:"audio_url,omitempty"`
	EventDate      *string   `json:"event_date,omitempty"`
	EventTime      *string   `json:"event_time,omitempty"`
	Location       *string   `json:"location,omitempty"`
	Gallery        []string  `json:"gallery,omitempty"`
	Status         string    `json:"status"`
	Category       *Category `json:"category"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
	PublishedAt    *string   `json:"published_at,omitempty"`
}

// PostDetail pairs a post with up to three related posts of the same
// type and locale.
type PostDetail struct {
	Post    Post   `json:"post"`
	Related []Post `json:"related_posts"`
}

type Settings struct {
	Locale          string         `json:"locale"`
	SiteName        string         `json:"site_name"`
	SiteDescription string         `json:"site_description"`
	ContactEmail    string         `json:"contact_email"`
	ContactPhone    string         `json:"contact_phone"`
	ContactAddress  string         `json:"contact_address"`
	ContactMapURL   *string        `json:"contact_map_url,omitempty"`
	Social          map[string]any `json:"social,omitempty"`
	ContactContent  map[string]any `json:"contact_content,omitempty"`
}

type Hero struct {
	ID              string  `json:"id"`
	Locale          string  `json:"locale"`
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
	Description     string  `json:"description"`
	Slides          []any   `json:"slides,omitempty"`
	ButtonText      string  `json:"button_text"`
	ButtonURL       string  `json:"button_url"`
	BackgroundImage string  `json:"background_image"`
	VideoURL        *string `json:"video_url,omitempty"`
	VideoCover      *string `json:"video_cover,omitempty"`
	VideoURL2       *string `json:"video_url_2,omitempty"`
	VideoCover2     *string `json:"video_cover_2,omitempty"`
	VideoURL3       *string `json:"video_url_3,omitempty"`
	VideoURL4       *string `json:"video_url_4,omitempty"`
	VideoURL5       *string `json:"video_url_5,omitempty"`
}

type Faq struct {
	ID       string `json:"id"`
	Locale   string `json:"locale"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

type ContentPage struct {
	Slug           string         `json:"slug"`
	Category       string         `json:"category"`
	Title          string         `json:"title"`
	SeoTitle       string         `json:"seo_title"`
	SeoDescription string         `json:"seo_description"`
	Data           map[string]any `json:"data"`
}

// ContentPageGroup collects the published pages of one navigation
// category with its display label.
type ContentPageGroup struct {
	Category    string        `json:"category"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Pages       []ContentPage `json:"pages"`
}

// EventPage is one page of one event partition. Totals refer to the
// partition alone; the three partitions paginate independently.
type EventPage struct {
	Events     []Post `json:"events"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// HomeData aggregates every section of the landing page.
type HomeData struct {
	Heroes     []Hero     `json:"heroes"`
	BlogPosts  []Post     `json:"blog_posts"`
	Services   []Post     `json:"services"`
	Events     []Post     `json:"events"`
	Videos     []Post     `json:"videos"`
	Podcasts   []Post     `json:"podcasts"`
	Faqs       []Faq      `json:"faqs"`
	Categories []Category `json:"categories"`
	Settings   Settings   `json:"settings"`
}

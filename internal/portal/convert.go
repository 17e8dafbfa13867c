package portal

import (
	"time"

	"github.com/tarfakademi/portal/internal/db"
)

// Map converts a slice through a converter function.
func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := isoTime(*t)
	return &s
}

// galleryFromMeta extracts meta["gallery"] when it parses as a list of
// strings; anything else is dropped.
func galleryFromMeta(meta map[string]any) []string {
	if meta == nil {
		return nil
	}
	raw, ok := meta["gallery"].([]any)
	if !ok {
		return nil
	}
	gallery := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		gallery = append(gallery, s)
	}
	if len(gallery) == 0 {
		return nil
	}
	return gallery
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:     c.ID,
		Name:   c.Name,
		Slug:   c.Slug,
		Type:   c.Type,
		Locale: c.Locale,
	}
}

func NewPost(p db.Post) Post {
	post := Post{
		ID:             p.ID,
		Type:           p.Type,
		Slug:           p.Slug,
		Locale:         p.Locale,
		Title:          p.Title,
		Excerpt:        p.Excerpt,
		Content:        p.Content,
		ContentRaw:     p.ContentRaw,
		FeaturedImage:  p.FeaturedImage,
		SeoTitle:       p.SeoTitle,
		SeoDescription: p.SeoDescription,
		OgImage:        p.OgImage,
		YoutubeURL:     p.YoutubeURL,
		AudioURL:       p.AudioURL,
		EventDate:      isoTimePtr(p.EventDate),
		EventTime:      p.EventTime,
		Location:       p.Location,
		Gallery:        galleryFromMeta(p.Meta),
		Status:         p.Status,
		CreatedAt:      isoTime(p.CreatedAt),
		UpdatedAt:      isoTime(p.UpdatedAt),
		PublishedAt:    isoTimePtr(p.PublishedAt),
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewSettings(s db.Setting) Settings {
	return Settings{
		Locale:          s.Locale,
		SiteName:        s.SiteName,
		SiteDescription: s.SiteDescription,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		ContactAddress:  s.ContactAddress,
		ContactMapURL:   s.ContactMapURL,
		Social:          s.Social,
		ContactContent:  s.ContactContent,
	}
}

func NewHero(h db.Hero) Hero {
	return Hero{
		ID:              h.ID,
		Locale:          h.Locale,
		Title:           h.Title,
		Subtitle:        h.Subtitle,
		Description:     h.Description,
		Slides:          h.Slides,
		ButtonText:      h.ButtonText,
		ButtonURL:       h.ButtonURL,
		BackgroundImage: h.BackgroundImage,
		VideoURL:        h.VideoURL,
		VideoCover:      h.VideoCover,
		VideoURL2:       h.VideoURL2,
		VideoCover2:     h.VideoCover2,
		VideoURL3:       h.VideoURL3,
		VideoURL4:       h.VideoURL4,
		VideoURL5:       h.VideoURL5,
	}
}

func NewFaq(f db.Faq) Faq {
	return Faq{
		ID:       f.ID,
		Locale:   f.Locale,
		Question: f.Question,
		Answer:   f.Answer,
		Order:    f.SortOrder,
	}
}

func NewContentPage(p db.ContentPage) ContentPage {
	page := ContentPage{
		Slug:     p.Slug,
		Category: p.Category,
		Title:    p.Title,
		Data:     p.Data,
	}

	if p.SeoTitle != nil {
		page.SeoTitle = *p.SeoTitle
	} else {
		page.SeoTitle = p.Title
	}
	if p.SeoDescription != nil {
		page.SeoDescription = *p.SeoDescription
	}

	return page
}

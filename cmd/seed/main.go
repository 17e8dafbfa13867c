// Command seed applies migrations and loads the initial content set:
// per-locale settings and heroes, starter categories, sample posts of
// every type, FAQs and the static pages. Rows that already exist are
// left untouched, so reruns are safe.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"github.com/namsral/flag"

	"github.com/tarfakademi/portal/config"
	"github.com/tarfakademi/portal/internal/content"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/i18n"
)

var (
	flConfig     = flag.String("config", "config.toml", "path to TOML configuration file")
	flMigrations = flag.String("migrations", "migrations", "path to migrations directory")
	flDatabase   = flag.String("database-url", "", "database URL for migrations (postgres://...)")
)

func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	var cfg config.Config
	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("read config failed", "error", err)
		os.Exit(1)
	}

	if *flDatabase != "" {
		if err := db.RunMigrations(ctx, *flDatabase, *flMigrations); err != nil {
			lg.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		lg.Info("migrations applied")
	}

	dbConnect := pg.Connect(&cfg.Database)
	defer dbConnect.Close()

	repo := db.New(dbConnect)
	if err := repo.Ping(ctx); err != nil {
		lg.Error("database unreachable", "error", err)
		os.Exit(1)
	}

	s := seeder{repo: repo, log: lg, now: time.Now().UTC()}
	if err := s.run(ctx); err != nil {
		lg.Error("seed failed", "error", err)
		os.Exit(1)
	}
	lg.Info("seed complete")
}

type seeder struct {
	repo *db.Repository
	log  *slog.Logger
	now  time.Time
}

func (s *seeder) run(ctx context.Context) error {
	if err := s.settings(ctx); err != nil {
		return err
	}
	if err := s.heroes(ctx); err != nil {
		return err
	}
	if err := s.categories(ctx); err != nil {
		return err
	}
	if err := s.posts(ctx); err != nil {
		return err
	}
	if err := s.faqs(ctx); err != nil {
		return err
	}
	return s.contentPages(ctx)
}

func (s *seeder) settings(ctx context.Context) error {
	descriptions := map[i18n.Locale]string{
		i18n.Turkish: "Bilim, teknoloji ve irfanı bir araya getiren çok katmanlı eğitim ve üretim ekosistemi.",
		i18n.English: "A multi-layered education and production ecosystem bringing together science, technology and wisdom.",
		i18n.Arabic:  "منظومة تعليم وإنتاج متعددة الطبقات تجمع بين العلم والتقنية والحكمة.",
	}
	for _, locale := range i18n.Supported {
		setting := db.Setting{
			Locale:          locale.String(),
			SiteName:        "TARF Akademi",
			SiteDescription: descriptions[locale],
			ContactEmail:    "iletisim@tarf.org",
			ContactPhone:    "+90 212 000 00 00",
			ContactAddress:  "İstanbul, Türkiye",
			UpdatedAt:       s.now,
		}
		if err := s.repo.UpsertSetting(ctx, &setting); err != nil {
			return err
		}
	}
	s.log.Info("settings seeded", "locales", len(i18n.Supported))
	return nil
}

func (s *seeder) heroes(ctx context.Context) error {
	titles := map[i18n.Locale][2]string{
		i18n.Turkish: {"Bilim, Teknoloji ve İrfan", "Geleceği birlikte inşa ediyoruz"},
		i18n.English: {"Science, Technology and Wisdom", "Building the future together"},
		i18n.Arabic:  {"العلم والتقنية والحكمة", "نبني المستقبل معًا"},
	}
	for _, locale := range i18n.Supported {
		t := titles[locale]
		hero := db.Hero{
			ID:        "hero-" + locale.String(),
			Locale:    locale.String(),
			Title:     t[0],
			Subtitle:  t[1],
			CreatedAt: s.now,
			UpdatedAt: s.now,
		}
		if err := s.repo.UpsertHero(ctx, &hero); err != nil {
			return err
		}
	}
	s.log.Info("heroes seeded", "locales", len(i18n.Supported))
	return nil
}

func (s *seeder) categories(ctx context.Context) error {
	starters := []db.Category{
		{Name: "Genel", Slug: "genel", Type: db.TypeBlog, Locale: "tr"},
		{Name: "Eğitim", Slug: "egitim", Type: db.TypeBlog, Locale: "tr"},
		{Name: "Etkinlik", Slug: "etkinlik", Type: db.TypeEvent, Locale: "tr"},
		{Name: "Video Kütüphanesi", Slug: "video-kutuphanesi", Type: db.TypeVideo, Locale: "tr"},
		{Name: "Podcast", Slug: "podcast", Type: db.TypePodcast, Locale: "tr"},
	}
	seeded := 0
	for i := range starters {
		starters[i].ID = uuid.NewString()
		starters[i].CreatedAt = s.now
		if err := s.repo.CreateCategory(ctx, &starters[i]); err != nil {
			if db.IsUniqueViolation(err) {
				continue
			}
			return err
		}
		seeded++
	}
	s.log.Info("categories seeded", "created", seeded)
	return nil
}

func (s *seeder) posts(ctx context.Context) error {
	youtube := "https://www.youtube.com/watch?v=tarf-tanitim"
	audio := "https://cdn.tarf.org/podcast/bolum-1.mp3"
	hall := "TARF Konferans Salonu"

	upcoming := s.now.AddDate(0, 1, 0).Truncate(24 * time.Hour)
	past := s.now.AddDate(0, -1, 0).Truncate(24 * time.Hour)
	eveningStart := "19:00"

	samples := []db.Post{
		{
			Type: db.TypeBlog, Slug: "yapay-zeka-ve-gelecek", Locale: "tr",
			Title:   "Yapay Zeka ve Gelecek",
			Excerpt: "Üretken modellerin sınıf içi kullanımı üzerine notlar.",
			Content: "Yapay zeka araçları eğitimde dönüştürücü bir rol üstleniyor.",
		},
		{
			Type: db.TypeEvent, Slug: "bahar-semineri", Locale: "tr",
			Title:     "Bahar Semineri",
			Excerpt:   "Dönem açılış semineri.",
			EventDate: &upcoming, EventTime: &eveningStart, Location: &hall,
		},
		{
			Type: db.TypeEvent, Slug: "kis-atolyesi", Locale: "tr",
			Title:     "Kış Atölyesi",
			Excerpt:   "Geçtiğimiz dönemin kapanış atölyesi.",
			EventDate: &past, Location: &hall,
		},
		{
			Type: db.TypeEvent, Slug: "yaz-okulu", Locale: "tr",
			Title:   "Yaz Okulu",
			Excerpt: "Tarihi duyurulacak.",
		},
		{
			Type: db.TypeVideo, Slug: "tanitim-filmi", Locale: "tr",
			Title:      "TARF Tanıtım Filmi",
			YoutubeURL: &youtube,
		},
		{
			Type: db.TypePodcast, Slug: "ilk-bolum", Locale: "tr",
			Title:    "Söyleşiler: İlk Bölüm",
			AudioURL: &audio,
		},
		{
			Type: db.TypeService, Slug: "mentorluk", Locale: "tr",
			Title:   "Mentorluk Programı",
			Excerpt: "Birebir mentorluk desteği.",
		},
	}

	seeded := 0
	for i := range samples {
		existing, err := s.repo.PostAnyStatus(ctx, samples[i].Type, samples[i].Slug, samples[i].Locale)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		samples[i].ID = uuid.NewString()
		samples[i].Status = db.StatusPublished
		samples[i].CreatedAt = s.now
		samples[i].UpdatedAt = s.now
		publishedAt := s.now
		samples[i].PublishedAt = &publishedAt

		if err := s.repo.CreatePost(ctx, &samples[i]); err != nil {
			return err
		}
		seeded++
	}
	s.log.Info("posts seeded", "created", seeded)
	return nil
}

func (s *seeder) faqs(ctx context.Context) error {
	existing, err := s.repo.Faqs(ctx, "tr")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	starters := []db.Faq{
		{Locale: "tr", Question: "Programlara nasıl başvurabilirim?",
			Answer: "Dönem başında açılan başvuru formu üzerinden.", SortOrder: 1},
		{Locale: "tr", Question: "Eğitimler ücretli mi?",
			Answer: "Tüm eğitim programları ücretsizdir.", SortOrder: 2},
	}
	for i := range starters {
		starters[i].ID = uuid.NewString()
		starters[i].CreatedAt = s.now
		if err := s.repo.CreateFaq(ctx, &starters[i]); err != nil {
			return err
		}
	}
	s.log.Info("faqs seeded", "created", len(starters))
	return nil
}

func (s *seeder) contentPages(ctx context.Context) error {
	pages := content.Pages()
	for _, definition := range pages {
		row := definition.ToRow(s.now)
		if err := s.repo.UpsertContentPage(ctx, &row); err != nil {
			return err
		}
	}
	s.log.Info("content pages seeded", "count", len(pages))
	return nil
}

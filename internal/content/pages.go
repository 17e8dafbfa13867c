// Package content carries the code-defined seed copy for the static
// pages and their navigation labels. The definitions here are only the
// initial import; once seeded, the database rows are authoritative and
// admins edit them there.
package content

import (
	"time"

	"github.com/tarfakademi/portal/internal/db"
)

// Section layout variants understood by the frontend renderer.
const (
	LayoutGrid     = "grid"
	LayoutList     = "list"
	LayoutStats    = "stats"
	LayoutTimeline = "timeline"
	LayoutTable    = "table"
	LayoutSplit    = "split"
)

// PageDefinition is one seedable static page. Data mirrors the
// structure the frontend consumes verbatim.
type PageDefinition struct {
	Slug           string
	Category       string
	Title          string
	SeoTitle       string
	SeoDescription string
	Data           map[string]any
}

// ToRow converts a definition into a published row stamped at now.
func (d PageDefinition) ToRow(now time.Time) db.ContentPage {
	page := db.ContentPage{
		Slug:        d.Slug,
		Category:    d.Category,
		Title:       d.Title,
		Data:        d.Data,
		Status:      db.StatusPublished,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.SeoTitle != "" {
		seoTitle := d.SeoTitle
		page.SeoTitle = &seoTitle
	}
	if d.SeoDescription != "" {
		seoDescription := d.SeoDescription
		page.SeoDescription = &seoDescription
	}
	return page
}

func hero(title, subtitle string) map[string]any {
	return map[string]any{"title": title, "subtitle": subtitle}
}

func section(id, layout, title string, rest map[string]any) map[string]any {
	s := map[string]any{"id": id, "layout": layout, "title": title}
	for k, v := range rest {
		s[k] = v
	}
	return s
}

// Pages returns the seedable page set in navigation order.
func Pages() []PageDefinition {
	return []PageDefinition{
		{
			Slug:           "hakkimizda",
			Category:       db.PageKurumsal,
			Title:          "Hakkımızda",
			SeoDescription: "TARF Akademi'nin kuruluşu, amacı ve çalışma alanları.",
			Data: map[string]any{
				"hero": hero("Hakkımızda", "Bilim, teknoloji ve irfanı bir araya getiren ekosistem"),
				"sections": []any{
					section("amac", LayoutSplit, "Amacımız", map[string]any{
						"body": "Araştırma, eğitim ve üretimi tek çatı altında buluşturmak.",
					}),
					section("rakamlar", LayoutStats, "Rakamlarla TARF", map[string]any{
						"stats": []any{
							map[string]any{"label": "Eğitim programı", "value": "24"},
							map[string]any{"label": "Atölye", "value": "60+"},
							map[string]any{"label": "Gönüllü", "value": "350"},
						},
					}),
					section("tarihce", LayoutTimeline, "Tarihçe", map[string]any{
						"items": []any{
							map[string]any{"title": "Kuruluş", "description": "Vakfın resmi kuruluşu", "year": "2018"},
							map[string]any{"title": "Akademi", "description": "İlk eğitim dönemi", "year": "2020"},
						},
					}),
				},
			},
		},
		{
			Slug:           "vizyon-misyon",
			Category:       db.PageKurumsal,
			Title:          "Vizyon ve Misyon",
			SeoDescription: "TARF Akademi'nin vizyonu ve misyonu.",
			Data: map[string]any{
				"hero": hero("Vizyon ve Misyon", ""),
				"sections": []any{
					section("vizyon", LayoutSplit, "Vizyon", map[string]any{
						"body": "Kendi değerlerinden beslenen, üreten bir nesil.",
					}),
					section("misyon", LayoutSplit, "Misyon", map[string]any{
						"body": "Eğitim, araştırma ve yazılım alanlarında nitelikli üretim.",
					}),
				},
			},
		},
		{
			Slug:           "arastirma-merkezi",
			Category:       db.PageDusunce,
			Title:          "Araştırma Merkezi",
			SeoDescription: "Analiz, rapor ve yayın çalışmalarımız.",
			Data: map[string]any{
				"hero": hero("Araştırma Merkezi", "Analiz ve yayın çalışmaları"),
				"sections": []any{
					section("alanlar", LayoutGrid, "Çalışma Alanları", map[string]any{
						"items": []any{
							map[string]any{"title": "Teknoloji Politikaları", "description": "Yapay zeka ve veri yönetişimi"},
							map[string]any{"title": "Eğitim Araştırmaları", "description": "Müfredat ve ölçme çalışmaları"},
						},
					}),
				},
			},
		},
		{
			Slug:           "egitim-programlari",
			Category:       db.PageAkademi,
			Title:          "Eğitim Programları",
			SeoDescription: "Dönemlik eğitim programları ve atölyeler.",
			Data: map[string]any{
				"hero": hero("Eğitim Programları", "Dönemlik programlar ve atölyeler"),
				"sections": []any{
					section("programlar", LayoutTable, "Program Takvimi", map[string]any{
						"table": map[string]any{
							"headers": []any{"Program", "Süre", "Dönem"},
							"rows": []any{
								[]any{"Temel Yazılım", "12 hafta", "Güz"},
								[]any{"Veri Bilimi", "10 hafta", "Bahar"},
							},
						},
					}),
				},
			},
		},
		{
			Slug:           "yazilim-ekibi",
			Category:       db.PageYazilim,
			Title:          "Yazılım Ekibi",
			SeoDescription: "Ürün geliştirme ve açık kaynak çalışmaları.",
			Data: map[string]any{
				"hero": hero("Yazılım Ekibi", "Ürün ve açık kaynak"),
				"sections": []any{
					section("projeler", LayoutList, "Projeler", map[string]any{
						"items": []any{
							map[string]any{"title": "Portal", "description": "Kurum içi içerik platformu"},
						},
					}),
				},
			},
		},
		{
			Slug:           "kulupler",
			Category:       db.PageKulupler,
			Title:          "Kulüpler",
			SeoDescription: "Öğrenci ve üretim toplulukları.",
			Data: map[string]any{
				"hero": hero("Kulüpler", "Üretim toplulukları"),
				"sections": []any{
					section("liste", LayoutGrid, "Topluluklar", map[string]any{
						"items": []any{
							map[string]any{"title": "Robotik", "description": "Donanım ve gömülü sistemler"},
							map[string]any{"title": "Yayıncılık", "description": "Podcast ve video üretimi"},
						},
					}),
				},
			},
		},
		{
			Slug:           "yayinlar",
			Category:       db.PageYayinlar,
			Title:          "Yayınlar",
			SeoDescription: "Kitaplar, raporlar ve süreli yayınlar.",
			Data: map[string]any{
				"hero": hero("Yayınlar", "Kitap ve raporlar"),
				"sections": []any{
					section("liste", LayoutList, "Son Yayınlar", map[string]any{
						"items": []any{
							map[string]any{"title": "Yıllık Faaliyet Raporu", "description": "2025"},
						},
					}),
				},
			},
		},
		{
			Slug:           "gizlilik-politikasi",
			Category:       db.PageYasal,
			Title:          "Gizlilik Politikası",
			SeoDescription: "Kişisel verilerin korunması ve gizlilik.",
			Data: map[string]any{
				"hero": hero("Gizlilik Politikası", ""),
				"sections": []any{
					section("metin", LayoutList, "Politika", map[string]any{
						"items": []any{
							map[string]any{"title": "Veri Toplama", "description": "Yalnızca iletişim formları üzerinden"},
							map[string]any{"title": "Saklama", "description": "Yasal süreler boyunca"},
						},
					}),
				},
			},
		},
	}
}

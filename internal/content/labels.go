package content

import "github.com/tarfakademi/portal/internal/db"

// Label is the navigation display copy for a content page category.
type Label struct {
	Label       string
	Description string
}

// CategoryLabels maps each fixed page category to its menu copy.
var CategoryLabels = map[string]Label{
	db.PageKurumsal: {Label: "Kurumsal", Description: "Vakıf, yönetişim ve kurumsal yapı"},
	db.PageDusunce:  {Label: "Düşünce", Description: "Araştırma, analiz ve yayın çalışmaları"},
	db.PageAkademi:  {Label: "Akademi", Description: "Eğitim programları ve atölyeler"},
	db.PageYazilim:  {Label: "Yazılım", Description: "Teknoloji ve ürün geliştirme"},
	db.PageKulupler: {Label: "Kulüpler", Description: "Öğrenci ve üretim toplulukları"},
	db.PageYayinlar: {Label: "Yayınlar", Description: "Kitaplar, raporlar ve süreli yayınlar"},
	db.PageYasal:    {Label: "Yasal", Description: "Sözleşmeler ve yasal metinler"},
}

// Package cachekeys defines the cache key and invalidation tag naming
// scheme shared by the read path (internal/portal) and the write path
// (internal/admin). Both sides must agree on these names, so they live
// in one package neither owns.
package cachekeys

import (
	"strings"

	"github.com/tarfakademi/portal/internal/i18n"
)

// Tag names. Admin writes invalidate these; portal reads attach them.

func SettingsTag(locale i18n.Locale) string {
	return "settings:" + locale.String()
}

func FaqsTag(locale i18n.Locale) string {
	return "faqs:" + locale.String()
}

func HeroesTag(locale i18n.Locale) string {
	return "heroes:" + locale.String()
}

// CategoriesTag scopes categories by locale and post type; an empty type
// means the unfiltered listing.
func CategoriesTag(locale i18n.Locale, postType string) string {
	if postType == "" {
		postType = "all"
	}
	return "categories:" + locale.String() + ":" + postType
}

func PostsTag(postType string, locale i18n.Locale) string {
	return "posts:" + postType + ":" + locale.String()
}

func PostTag(postType string, locale i18n.Locale, slug string) string {
	return "post:" + postType + ":" + locale.String() + ":" + slug
}

func ContentPagesTag() string {
	return "content-pages"
}

func ContentPageTag(slug string) string {
	return "content-page:" + slug
}

// Key builds a cache key from an operation name and its effective
// parameters. Every parameter that changes the result must be included,
// otherwise two distinct reads would collide on one entry.
func Key(op string, params ...string) string {
	if len(params) == 0 {
		return op
	}
	return op + ":" + strings.Join(params, ":")
}

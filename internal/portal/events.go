package portal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tarfakademi/portal/internal/cache"
	"github.com/tarfakademi/portal/internal/cachekeys"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/i18n"
)

// Sort directions accepted by the event partition listings.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

const (
	DefaultEventsPerPage = 12

	maxEventsPerPage = 100
)

// todayStart is the partition boundary: the start of the current civil
// day in the site's timezone, expressed as UTC midnight of that date.
// Event dates are stored as UTC midnight timestamps, so comparisons
// stay date-only.
func (m *Manager) todayStart() time.Time {
	y, mo, d := m.now().In(m.loc).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// UpcomingEvents lists published events dated today or later. Default
// order is soonest first.
func (m *Manager) UpcomingEvents(ctx context.Context, locale string, page, perPage int, order string) (*EventPage, error) {
	return m.eventPartition(ctx, "events-upcoming", locale, page, perPage, order, OrderAsc,
		m.db.UpcomingEvents, m.db.UpcomingEventsCount)
}

// PastEvents lists published events dated strictly before today.
// Default order is most recent first.
func (m *Manager) PastEvents(ctx context.Context, locale string, page, perPage int, order string) (*EventPage, error) {
	return m.eventPartition(ctx, "events-past", locale, page, perPage, order, OrderDesc,
		m.db.PastEvents, m.db.PastEventsCount)
}

// UndatedEvents lists published events without a date, most recently
// updated first. The partition has no meaningful date order so the
// order parameter is not accepted.
func (m *Manager) UndatedEvents(ctx context.Context, locale string, page, perPage int) (*EventPage, error) {
	loc := i18n.Normalize(locale)
	perPage = clampPerPage(perPage)

	key := cachekeys.Key("events-undated", loc.String(), strconv.Itoa(page), strconv.Itoa(perPage))
	tags := []string{cachekeys.PostsTag(db.TypeEvent, loc)}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) (*EventPage, error) {
		total, err := m.db.UndatedEventsCount(ctx, loc.String())
		if err != nil {
			return nil, fmt.Errorf("db count undated events: %w", err)
		}
		page, totalPages := clampPage(page, total, perPage)

		rows, err := m.db.UndatedEvents(ctx, loc.String(), perPage, (page-1)*perPage)
		if err != nil {
			return nil, fmt.Errorf("db get undated events: %w", err)
		}

		return &EventPage{
			Events:     Map(rows, NewPost),
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		}, nil
	})
}

type eventLister func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error)
type eventCounter func(ctx context.Context, locale string, todayStart time.Time) (int, error)

// eventPartition is the shared fetch path for the two dated partitions.
// The cache key embeds the civil date so a cached page from yesterday
// can never serve today's boundary.
func (m *Manager) eventPartition(ctx context.Context, op, locale string, page, perPage int, order, defaultOrder string, list eventLister, count eventCounter) (*EventPage, error) {
	loc := i18n.Normalize(locale)
	perPage = clampPerPage(perPage)
	if order != OrderAsc && order != OrderDesc {
		order = defaultOrder
	}
	today := m.todayStart()

	key := cachekeys.Key(op, loc.String(), today.Format("2006-01-02"),
		strconv.Itoa(page), strconv.Itoa(perPage), order)
	tags := []string{cachekeys.PostsTag(db.TypeEvent, loc)}

	return cache.Remember(ctx, m.cache, key, tags, cacheTTL, func(ctx context.Context) (*EventPage, error) {
		total, err := count(ctx, loc.String(), today)
		if err != nil {
			return nil, fmt.Errorf("db count events: %w", err)
		}
		page, totalPages := clampPage(page, total, perPage)

		rows, err := list(ctx, loc.String(), today, order == OrderAsc, perPage, (page-1)*perPage)
		if err != nil {
			return nil, fmt.Errorf("db get events: %w", err)
		}

		return &EventPage{
			Events:     Map(rows, NewPost),
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		}, nil
	})
}

func clampPerPage(perPage int) int {
	switch {
	case perPage <= 0:
		return DefaultEventsPerPage
	case perPage > maxEventsPerPage:
		return maxEventsPerPage
	}
	return perPage
}

// clampPage folds an out-of-range page into [1, totalPages]. An empty
// partition still reports one (empty) page.
func clampPage(page, total, perPage int) (int, int) {
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

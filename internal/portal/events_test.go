package portal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarfakademi/portal/internal/db"
)

// pinNow fixes the manager clock so the partition boundary is
// deterministic.
func pinNow(m *Manager, t time.Time) {
	m.now = func() time.Time { return t }
}

func TestTodayStartUsesSiteTimezone(t *testing.T) {
	store := &storeMock{}
	manager := newTestManager(t, store)

	// 22:30 UTC on March 9th is already March 10th in Istanbul, so the
	// boundary is UTC midnight of the 10th.
	pinNow(manager, time.Date(2026, 3, 9, 22, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), manager.todayStart())

	pinNow(manager, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), manager.todayStart())
}

func TestUpcomingEventsDefaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	wantToday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	store := &storeMock{
		upcomingCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			assert.Equal(t, wantToday, todayStart)
			return 3, nil
		},
		upcomingFn: func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
			assert.Equal(t, wantToday, todayStart)
			assert.True(t, asc, "upcoming defaults to soonest first")
			assert.Equal(t, DefaultEventsPerPage, limit)
			assert.Equal(t, 0, offset)
			return []db.Post{
				{ID: "e1", Type: db.TypeEvent, Status: db.StatusPublished,
					EventDate: timePtr(wantToday)},
			}, nil
		},
	}
	manager := newTestManager(t, store)
	pinNow(manager, now)

	page, err := manager.UpcomingEvents(context.Background(), "tr", 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultEventsPerPage, page.PerPage)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Events, 1)
	assert.Equal(t, "e1", page.Events[0].ID)
}

func TestPastEventsDefaultsDescending(t *testing.T) {
	store := &storeMock{
		pastCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			return 1, nil
		},
		pastFn: func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
			assert.False(t, asc, "past defaults to most recent first")
			return []db.Post{{ID: "e1", Type: db.TypeEvent, Status: db.StatusPublished}}, nil
		},
	}
	manager := newTestManager(t, store)
	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	page, err := manager.PastEvents(context.Background(), "tr", 1, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestPastEventsExplicitAscending(t *testing.T) {
	store := &storeMock{
		pastCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			return 1, nil
		},
		pastFn: func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
			assert.True(t, asc)
			return nil, nil
		},
	}
	manager := newTestManager(t, store)
	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := manager.PastEvents(context.Background(), "tr", 1, 0, OrderAsc)
	require.NoError(t, err)
}

func TestEventsPageClampedToLastPage(t *testing.T) {
	var gotOffset int
	store := &storeMock{
		pastCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			return 20, nil
		},
		pastFn: func(ctx context.Context, locale string, todayStart time.Time, asc bool, limit, offset int) ([]db.Post, error) {
			gotOffset = offset
			return nil, nil
		},
	}
	manager := newTestManager(t, store)
	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	// 20 events at 12 per page span 2 pages; page 999 folds to page 2.
	page, err := manager.PastEvents(context.Background(), "tr", 999, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, DefaultEventsPerPage, gotOffset)
}

func TestEventsEmptyPartition(t *testing.T) {
	store := &storeMock{}
	manager := newTestManager(t, store)
	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	page, err := manager.UpcomingEvents(context.Background(), "tr", 5, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Events)
}

func TestUndatedEvents(t *testing.T) {
	store := &storeMock{
		undatedCountFn: func(ctx context.Context, locale string) (int, error) {
			return 2, nil
		},
		undatedFn: func(ctx context.Context, locale string, limit, offset int) ([]db.Post, error) {
			return []db.Post{
				{ID: "e1", Type: db.TypeEvent, Status: db.StatusPublished},
				{ID: "e2", Type: db.TypeEvent, Status: db.StatusPublished},
			}, nil
		},
	}
	manager := newTestManager(t, store)

	page, err := manager.UndatedEvents(context.Background(), "tr", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Events, 2)
	assert.Nil(t, page.Events[0].EventDate)
}

func TestEventsCacheKeyedByDay(t *testing.T) {
	calls := 0
	store := &storeMock{
		upcomingCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			calls++
			return 0, nil
		},
	}
	manager := newTestManager(t, store)

	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	_, err := manager.UpcomingEvents(context.Background(), "tr", 1, 0, "")
	require.NoError(t, err)

	// Same day hits the cache.
	_, err = manager.UpcomingEvents(context.Background(), "tr", 1, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// The next day the boundary moves, so the cache entry no longer
	// matches.
	pinNow(manager, time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC))
	_, err = manager.UpcomingEvents(context.Background(), "tr", 1, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPastEventsTotalPages(t *testing.T) {
	store := &storeMock{
		pastCountFn: func(ctx context.Context, locale string, todayStart time.Time) (int, error) {
			return 25, nil
		},
	}
	manager := newTestManager(t, store)
	pinNow(manager, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	page, err := manager.PastEvents(context.Background(), "tr", 1, 12, "")
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.Total)
}

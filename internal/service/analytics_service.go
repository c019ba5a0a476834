package service

import (
	"context"
	"log"
	"time"

	"mindconnect/internal/domain"
)

// AnalyticsStore is the set of counts the snapshot is built from.
type AnalyticsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountNGOProfiles(ctx context.Context, approved *bool) (int64, error)
	CountEvents(ctx context.Context, approved *bool) (int64, error)
	CountUpcomingApprovedEvents(ctx context.Context, since time.Time) (int64, error)
	CountEventsByCategory(ctx context.Context) (map[string]int64, error)
}

type UserStats struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"byRole"`
}

type ProfileStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

type EventStats struct {
	Total      int64            `json:"total"`
	Approved   int64            `json:"approved"`
	Pending    int64            `json:"pending"`
	Upcoming   int64            `json:"upcoming"`
	ByCategory map[string]int64 `json:"byCategory"`
}

type Snapshot struct {
	Users       UserStats    `json:"users"`
	NGOProfiles ProfileStats `json:"ngoProfiles"`
	Events      EventStats   `json:"events"`
	Timestamp   time.Time    `json:"timestamp"`
}

type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// Snapshot always returns a complete structure. A failing count is logged
// and reported as zero.
func (s *AnalyticsService) Snapshot(ctx context.Context) *Snapshot {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yes, no := true, false

	snap := &Snapshot{
		Users: UserStats{ByRole: make(map[string]int64, len(domain.Roles))},
		Events: EventStats{
			ByCategory: map[string]int64{},
		},
		Timestamp: now,
	}
	for _, role := range domain.Roles {
		snap.Users.ByRole[role] = 0
	}

	snap.Users.Total = count("users.total", func() (int64, error) { return s.store.CountUsers(ctx) })
	if roles, err := s.store.CountUsersByRole(ctx); err != nil {
		log.Printf("[analytics] users.byRole: %v", err)
	} else {
		for role, n := range roles {
			snap.Users.ByRole[role] = n
		}
	}

	snap.NGOProfiles.Total = count("ngoProfiles.total", func() (int64, error) { return s.store.CountNGOProfiles(ctx, nil) })
	snap.NGOProfiles.Approved = count("ngoProfiles.approved", func() (int64, error) { return s.store.CountNGOProfiles(ctx, &yes) })
	snap.NGOProfiles.Pending = count("ngoProfiles.pending", func() (int64, error) { return s.store.CountNGOProfiles(ctx, &no) })

	snap.Events.Total = count("events.total", func() (int64, error) { return s.store.CountEvents(ctx, nil) })
	snap.Events.Approved = count("events.approved", func() (int64, error) { return s.store.CountEvents(ctx, &yes) })
	snap.Events.Pending = count("events.pending", func() (int64, error) { return s.store.CountEvents(ctx, &no) })
	snap.Events.Upcoming = count("events.upcoming", func() (int64, error) { return s.store.CountUpcomingApprovedEvents(ctx, today) })
	if cats, err := s.store.CountEventsByCategory(ctx); err != nil {
		log.Printf("[analytics] events.byCategory: %v", err)
	} else {
		for cat, n := range cats {
			snap.Events.ByCategory[cat] = n
		}
	}
	return snap
}

func count(metric string, fn func() (int64, error)) int64 {
	n, err := fn()
	if err != nil {
		log.Printf("[analytics] %s: %v", metric, err)
		return 0
	}
	return n
}

package repository

import (
	"context"
	"time"

	"mindconnect/internal/models"
	"mindconnect/internal/query"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the read-only counts behind the admin snapshot.
// Each method is a single query so callers can isolate failures per metric.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type groupCount struct {
	GroupKey string
	Total    int64
}

func (r *AnalyticsRepository) count(ctx context.Context, model any, preds ...query.Predicate) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Scopes(query.And(preds...)).Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) groupBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(model).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.GroupKey] = row.Total
	}
	return out, nil
}

func (r *AnalyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.User{})
}

func (r *AnalyticsRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &models.User{}, "role")
}

// CountNGOProfiles counts all profiles, or only those matching approved.
func (r *AnalyticsRepository) CountNGOProfiles(ctx context.Context, approved *bool) (int64, error) {
	if approved == nil {
		return r.count(ctx, &models.NGOProfile{})
	}
	return r.count(ctx, &models.NGOProfile{}, query.Eq("approved", *approved))
}

func (r *AnalyticsRepository) CountEvents(ctx context.Context, approved *bool) (int64, error) {
	if approved == nil {
		return r.count(ctx, &models.Event{})
	}
	return r.count(ctx, &models.Event{}, query.Eq("approved", *approved))
}

// CountUpcomingApprovedEvents counts approved events dated at or after since.
func (r *AnalyticsRepository) CountUpcomingApprovedEvents(ctx context.Context, since time.Time) (int64, error) {
	upcoming := query.And(query.Gte("event_date", since.UTC()), query.Eq("approved", true))
	return r.count(ctx, &models.Event{}, upcoming)
}

func (r *AnalyticsRepository) CountEventsByCategory(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, &models.Event{}, "category")
}

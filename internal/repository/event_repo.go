package repository

import (
	"context"
	"time"

	"mindconnect/internal/models"
	"mindconnect/internal/query"

	"gorm.io/gorm"
)

type EventFilter struct {
	NGOID    *uint
	Approved *bool
	Category string
	// From keeps events dated at or after this instant.
	From   *time.Time
	Search string
	Page   query.Page
}

func (f EventFilter) builder() *query.Builder {
	var b query.Builder
	if f.NGOID != nil {
		b.Where(query.Eq("ngo_id", *f.NGOID))
	}
	if f.Approved != nil {
		b.Where(query.Eq("approved", *f.Approved))
	}
	if f.Category != "" {
		b.Where(query.Eq("category", f.Category))
	}
	if f.From != nil {
		b.Where(query.Gte("event_date", f.From.UTC()))
	}
	if f.Search != "" {
		b.Where(query.Contains(f.Search, "title", "description", "location"))
	}
	return &b
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Event{}, id)
}

// List returns events with the latest event date first.
func (r *EventRepository) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	list := []models.Event{}
	err := r.db.WithContext(ctx).
		Scopes(f.builder().Scope("event_date DESC, id DESC", f.Page)).
		Find(&list).Error
	return list, err
}

func (r *EventRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return updateByID(ctx, r.db, &models.Event{}, id, fields)
}

func (r *EventRepository) Delete(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

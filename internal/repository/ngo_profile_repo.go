package repository

import (
	"context"

	"mindconnect/internal/models"
	"mindconnect/internal/query"

	"gorm.io/gorm"
)

type NGOProfileFilter struct {
	UserID   *uint
	Approved *bool
	Search   string
	Page     query.Page
}

func (f NGOProfileFilter) builder() *query.Builder {
	var b query.Builder
	if f.UserID != nil {
		b.Where(query.Eq("user_id", *f.UserID))
	}
	if f.Approved != nil {
		b.Where(query.Eq("approved", *f.Approved))
	}
	if f.Search != "" {
		b.Where(query.Contains(f.Search, "ngo_name", "description", "contact_email"))
	}
	return &b
}

type NGOProfileRepository struct {
	db *gorm.DB
}

func NewNGOProfileRepository(db *gorm.DB) *NGOProfileRepository {
	return &NGOProfileRepository{db: db}
}

func (r *NGOProfileRepository) Create(ctx context.Context, p *models.NGOProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *NGOProfileRepository) GetByID(ctx context.Context, id uint) (*models.NGOProfile, error) {
	var p models.NGOProfile
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *NGOProfileRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.NGOProfile{}, id)
}

// List returns profiles newest first.
func (r *NGOProfileRepository) List(ctx context.Context, f NGOProfileFilter) ([]models.NGOProfile, error) {
	list := []models.NGOProfile{}
	err := r.db.WithContext(ctx).
		Scopes(f.builder().Scope("created_at DESC, id DESC", f.Page)).
		Find(&list).Error
	return list, err
}

func (r *NGOProfileRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return updateByID(ctx, r.db, &models.NGOProfile{}, id, fields)
}

// Delete removes the profile and returns the row as it was.
func (r *NGOProfileRepository) Delete(ctx context.Context, id uint) (*models.NGOProfile, error) {
	var p models.NGOProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.NGOProfile{}, id)
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
	return &p, nil
}

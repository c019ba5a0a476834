package repository

import (
	"context"

	"mindconnect/internal/models"
	"mindconnect/internal/query"

	"gorm.io/gorm"
)

type ChatRecordFilter struct {
	UserID    *uint
	SessionID string
	Search    string
	Page      query.Page
}

func (f ChatRecordFilter) builder() *query.Builder {
	var b query.Builder
	if f.UserID != nil {
		b.Where(query.Eq("user_id", *f.UserID))
	}
	if f.SessionID != "" {
		b.Where(query.Eq("session_id", f.SessionID))
	}
	if f.Search != "" {
		b.Where(query.Contains(f.Search, "message", "response"))
	}
	return &b
}

type ChatRecordRepository struct {
	db *gorm.DB
}

func NewChatRecordRepository(db *gorm.DB) *ChatRecordRepository {
	return &ChatRecordRepository{db: db}
}

func (r *ChatRecordRepository) Create(ctx context.Context, c *models.ChatRecord) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ChatRecordRepository) GetByID(ctx context.Context, id uint) (*models.ChatRecord, error) {
	var c models.ChatRecord
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatRecordRepository) List(ctx context.Context, f ChatRecordFilter) ([]models.ChatRecord, error) {
	list := []models.ChatRecord{}
	err := r.db.WithContext(ctx).
		Scopes(f.builder().Scope("created_at DESC, id DESC", f.Page)).
		Find(&list).Error
	return list, err
}

func (r *ChatRecordRepository) DeleteByID(ctx context.Context, id uint) (*models.ChatRecord, error) {
	var c models.ChatRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChatRecord{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteBySession removes every turn of a conversation and returns how many
// rows went away.
func (r *ChatRecordRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.ChatRecord{})
	return res.RowsAffected, res.Error
}

func (r *ChatRecordRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ChatRecord{})
	return res.RowsAffected, res.Error
}

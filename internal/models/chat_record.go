package models

import "time"

// ChatRecord is one user message and the reply it received. Records are
// never updated.
type ChatRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"column:user_id;index" json:"userId"`
	SessionID string    `gorm:"column:session_id;size:128;not null;index" json:"sessionId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	Language  string    `gorm:"size:8;not null;default:'en'" json:"language"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (ChatRecord) TableName() string {
	return "chat_history"
}

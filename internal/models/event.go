package models

import "time"

// Event is created unapproved and only becomes publicly listed once an
// administrator flips Approved.
type Event struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	NGOID            uint      `gorm:"column:ngo_id;not null;index" json:"ngoId"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      *string   `gorm:"type:text" json:"description"`
	EventDate        time.Time `gorm:"column:event_date;not null;index" json:"eventDate"`
	Location         string    `gorm:"size:255;not null" json:"location"`
	Category         string    `gorm:"size:100;not null;index" json:"category"`
	RegistrationLink *string   `gorm:"column:registration_link;size:512" json:"registrationLink"`
	ImageURL         *string   `gorm:"column:image_url;size:512" json:"imageUrl"`
	Approved         bool      `gorm:"not null;default:false;index" json:"approved"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	NGO *NGOProfile `gorm:"foreignKey:NGOID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

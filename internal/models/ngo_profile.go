package models

import "time"

type NGOProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index" json:"userId"`
	NGOName      string    `gorm:"column:ngo_name;size:255;not null" json:"ngoName"`
	Description  *string   `gorm:"type:text" json:"description"`
	ContactEmail string    `gorm:"column:contact_email;size:255;not null" json:"contactEmail"`
	ContactPhone *string   `gorm:"column:contact_phone;size:64" json:"contactPhone"`
	WebsiteURL   *string   `gorm:"column:website_url;size:512" json:"websiteUrl"`
	LogoURL      *string   `gorm:"column:logo_url;size:512" json:"logoUrl"`
	Approved     bool      `gorm:"not null;default:false;index" json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (NGOProfile) TableName() string {
	return "ngo_profiles"
}

package database

import (
	"fmt"
	"log"
	"time"

	"mindconnect/internal/auth"
	"mindconnect/internal/domain"
	"mindconnect/internal/models"

	"gorm.io/gorm"
)

type seedUser struct {
	email, password, role, name string
}

type seedProfile struct {
	ownerEmail, name, description, email, phone, website string
	approved                                             bool
}

type seedEvent struct {
	ngo, title, description, location, category string
	inDays                                      int
	approved                                    bool
}

var demoUsers = []seedUser{
	{"admin@mindconnect.com", "Admin@123", domain.RoleAdmin, "Admin User"},
	{"contact@mentalhealthfoundation.org", "Ngo@1234", domain.RoleNGO, "Mental Health Foundation"},
	{"info@youthwellness.org", "Ngo@1234", domain.RoleNGO, "Youth Wellness Initiative"},
	{"hello@mindcarealliance.org", "Ngo@1234", domain.RoleNGO, "Mind Care Alliance"},
	{"sarah.johnson@university.edu", "Student@123", domain.RoleStudent, "Sarah Johnson"},
	{"michael.chen@university.edu", "Student@123", domain.RoleStudent, "Michael Chen"},
}

var demoProfiles = []seedProfile{
	{
		ownerEmail:  "contact@mentalhealthfoundation.org",
		name:        "Mental Health Foundation",
		description: "Mental health awareness and support services for students.",
		email:       "contact@mentalhealthfoundation.org",
		phone:       "+1-555-0101",
		website:     "https://mentalhealthfoundation.org",
		approved:    true,
	},
	{
		ownerEmail:  "info@youthwellness.org",
		name:        "Youth Wellness Initiative",
		description: "Wellness programs, workshops and peer support groups for young adults.",
		email:       "info@youthwellness.org",
		phone:       "+1-555-0202",
		website:     "https://youthwellness.org",
		approved:    true,
	},
	{
		ownerEmail:  "hello@mindcarealliance.org",
		name:        "Mind Care Alliance",
		description: "Therapy, support groups and counselling.",
		email:       "hello@mindcarealliance.org",
		phone:       "+1-555-0404",
		website:     "https://mindcarealliance.org",
		approved:    false,
	},
}

var demoEvents = []seedEvent{
	{"Mental Health Foundation", "Stress Management for Students", "Practical techniques for exam season.", "Campus Community Center, Room 201", "Workshop", 7, true},
	{"Youth Wellness Initiative", "Weekly Peer Support Circle", "A confidential space to share and listen.", "Student Union Building, Room 305", "Support Group", 3, true},
	{"Mental Health Foundation", "Breaking the Stigma", "An online talk on mental health awareness.", "Online", "Webinar", 14, false},
	{"Youth Wellness Initiative", "Coping with Anxiety", "Tools for managing anxious thoughts.", "Health Sciences Building, Auditorium A", "Workshop", 21, true},
	{"Mind Care Alliance", "Free Counselling Sessions", "One-on-one sessions with licensed counsellors.", "Mind Care Center, 123 Main Street", "Counseling Session", 5, false},
}

// SeedDemo fills an empty database with demo accounts, NGO profiles and
// upcoming events. It does nothing when any user already exists.
func SeedDemo(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now = now.UTC()
	return db.Transaction(func(tx *gorm.DB) error {
		userIDs := make(map[string]uint, len(demoUsers))
		for _, su := range demoUsers {
			hash, err := auth.HashPassword(su.password)
			if err != nil {
				return err
			}
			u := models.User{Email: su.email, PasswordHash: hash, Role: su.role, FullName: su.name, CreatedAt: now, UpdatedAt: now}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", su.email, err)
			}
			userIDs[su.email] = u.ID
		}

		profileIDs := make(map[string]uint, len(demoProfiles))
		for _, sp := range demoProfiles {
			p := models.NGOProfile{
				UserID:       userIDs[sp.ownerEmail],
				NGOName:      sp.name,
				Description:  strPtr(sp.description),
				ContactEmail: sp.email,
				ContactPhone: strPtr(sp.phone),
				WebsiteURL:   strPtr(sp.website),
				Approved:     sp.approved,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("seed profile %s: %w", sp.name, err)
			}
			profileIDs[sp.name] = p.ID
		}

		for _, se := range demoEvents {
			date := time.Date(now.Year(), now.Month(), now.Day()+se.inDays, 14, 0, 0, 0, time.UTC)
			e := models.Event{
				NGOID:       profileIDs[se.ngo],
				Title:       se.title,
				Description: strPtr(se.description),
				EventDate:   date,
				Location:    se.location,
				Category:    se.category,
				Approved:    se.approved,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&e).Error; err != nil {
				return fmt.Errorf("seed event %s: %w", se.title, err)
			}
		}
		log.Printf("[database] seeded %d users, %d profiles, %d events", len(demoUsers), len(demoProfiles), len(demoEvents))
		return nil
	})
}

func strPtr(s string) *string { return &s }

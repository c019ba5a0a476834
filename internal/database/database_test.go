package database

import (
	"testing"
	"time"

	"mindconnect/config"
	"mindconnect/internal/models"
)

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := Dialector(&config.DatabaseConfig{Driver: "oracle", DSN: "x"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
	for _, d := range []string{"mysql", "postgres", "sqlite", "sqlserver"} {
		if _, err := Dialector(&config.DatabaseConfig{Driver: d, DSN: "x"}); err != nil {
			t.Errorf("%s: %v", d, err)
		}
	}
}

func TestSeedDemoOnce(t *testing.T) {
	db, err := NewDB(&config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if err := SeedDemo(db, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedDemo(db, now); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var users, profiles, events int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.NGOProfile{}).Count(&profiles)
	db.Model(&models.Event{}).Count(&events)
	if users != int64(len(demoUsers)) || profiles != int64(len(demoProfiles)) || events != int64(len(demoEvents)) {
		t.Fatalf("counts = %d/%d/%d", users, profiles, events)
	}

	var past int64
	db.Model(&models.Event{}).Where("event_date < ?", now).Count(&past)
	if past != 0 {
		t.Errorf("%d seeded events are in the past", past)
	}
}

//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mindconnect/config"
	"mindconnect/internal/database"
	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/query"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// startMySQL runs a throwaway MySQL server and returns a migrated connection.
func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mysql:8.0",
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "secret",
				"MYSQL_DATABASE":      "mindconnect",
			},
			WaitingFor: wait.ForLog("ready for connections").
				WithOccurrence(2).
				WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start mysql: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate mysql: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	db, err := database.NewDB(&config.DatabaseConfig{
		Driver:          "mysql",
		DSN:             fmt.Sprintf("root:secret@tcp(%s:%s)/mindconnect?charset=utf8mb4&parseTime=True&loc=UTC", host, port.Port()),
		MaxIdleConns:    2,
		MaxOpenConns:    4,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMySQLRepositoryContract(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()
	profiles := NewNGOProfileRepository(db)
	events := NewEventRepository(db)

	u := mustUser(t, db, "a@ngo.org", domain.RoleNGO)

	err := profiles.Create(ctx, &models.NGOProfile{UserID: u.ID + 1000, NGOName: "Ghost", ContactEmail: "g@h.org"})
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("missing user: err = %v, want ErrForeignKeyViolated", err)
	}
	dup := &models.User{Email: u.Email, PasswordHash: "x", Role: domain.RoleNGO, FullName: "dup"}
	if err := db.Create(dup).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate email: err = %v, want ErrDuplicatedKey", err)
	}

	p := mustProfile(t, db, u.ID, "Calm Minds", false, time.Now().UTC())
	// Same values twice: MySQL reports zero affected rows the second time.
	fields := map[string]any{"approved": true, "updated_at": time.Now().UTC().Truncate(time.Second)}
	for i := 0; i < 2; i++ {
		if err := profiles.Update(ctx, p.ID, fields); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}
	if err := profiles.Update(ctx, p.ID+1000, fields); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("update missing: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	mustEvent(t, db, p.ID, "Stress Workshop", "Workshop", now.Add(24*time.Hour), true)
	mustEvent(t, db, p.ID, "Old Talk", "Webinar", now.Add(-24*time.Hour), true)
	list, err := events.List(ctx, EventFilter{From: &now, Search: "STRESS", Page: query.NewPage(0, 0, 10)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Stress Workshop" {
		t.Errorf("upcoming search = %+v", list)
	}

	cats, err := NewAnalyticsRepository(db).CountEventsByCategory(ctx)
	if err != nil || cats["Workshop"] != 1 || cats["Webinar"] != 1 {
		t.Errorf("categories = %v, %v", cats, err)
	}
}

package query

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type item struct {
	ID       uint
	Owner    uint
	Title    string
	Body     string
	Approved bool
	Score    int
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	rows := []item{
		{Owner: 1, Title: "Yoga Morning", Body: "stretch", Approved: true, Score: 1},
		{Owner: 1, Title: "Study Group", Body: "Exam stress", Approved: false, Score: 2},
		{Owner: 2, Title: "Art therapy", Body: "paint and talk", Approved: true, Score: 3},
		{Owner: 2, Title: "Walk", Body: "outdoor STRESS relief", Approved: true, Score: 4},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestNewPage(t *testing.T) {
	cases := []struct {
		limit, offset, def int
		want               Page
	}{
		{0, 0, 10, Page{10, 0}},
		{-5, -1, 20, Page{20, 0}},
		{50, 5, 10, Page{50, 5}},
		{1000, 0, 10, Page{MaxLimit, 0}},
	}
	for _, c := range cases {
		if got := NewPage(c.limit, c.offset, c.def); got != c.want {
			t.Errorf("NewPage(%d,%d,%d) = %+v, want %+v", c.limit, c.offset, c.def, got, c.want)
		}
	}
}

func TestBuilderAndsPredicates(t *testing.T) {
	db := setupTestDB(t)

	var b Builder
	b.Where(Eq("owner", 2)).Where(Eq("approved", true)).Where(Contains("stress", "title", "body"))

	var got []item
	if err := db.Scopes(b.Scope("score DESC", NewPage(0, 0, 10))).Find(&got).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Walk" {
		t.Fatalf("got %+v, want only Walk", got)
	}
}

func TestContainsIsCaseInsensitiveAcrossColumns(t *testing.T) {
	db := setupTestDB(t)

	var b Builder
	b.Where(Contains("STRESS", "title", "body"))

	var n int64
	if err := db.Model(&item{}).Scopes(b.Filter()).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestScopeOrdersAndPages(t *testing.T) {
	db := setupTestDB(t)

	var b Builder
	b.Where(Gte("score", 2))

	var got []item
	if err := db.Scopes(b.Scope("score DESC", Page{Limit: 2, Offset: 1})).Find(&got).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 || got[0].Score != 3 || got[1].Score != 2 {
		t.Fatalf("got %+v, want scores [3 2]", got)
	}

	var empty Builder
	var all []item
	if err := db.Scopes(empty.Scope("", Page{Limit: 10})).Find(&all).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("len = %d, want 4", len(all))
	}
}

// Package query composes the list queries shared by the NGO profile, event
// and chat history endpoints: parameter coercion, AND-joined predicates,
// ordering and clamped pagination.
package query

import (
	"strings"

	"gorm.io/gorm"
)

const MaxLimit = 100

// Page is a validated limit/offset pair.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage clamps limit to (0, MaxLimit] and offset to >= 0. A non-positive
// limit falls back to defaultLimit.
func NewPage(limit, offset, defaultLimit int) Page {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// Predicate narrows a query. Column names must be constants, never user input.
type Predicate func(db *gorm.DB) *gorm.DB

func Eq(column string, value any) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func Gte(column string, value any) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", value)
	}
}

// Contains matches term as a case-insensitive substring of any of columns.
func Contains(term string, columns ...string) Predicate {
	pattern := "%" + strings.ToLower(term) + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	expr := "(" + strings.Join(clauses, " OR ") + ")"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(expr, args...)
	}
}

// And joins predicates into one.
func And(preds ...Predicate) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range preds {
			db = p(db)
		}
		return db
	}
}

// Builder accumulates predicates that are combined with AND.
type Builder struct {
	preds []Predicate
}

func (b *Builder) Where(p Predicate) *Builder {
	b.preds = append(b.preds, p)
	return b
}

// Filter returns a GORM scope applying only the predicates.
func (b *Builder) Filter() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return And(b.preds...)(db)
	}
}

// Scope returns a GORM scope applying predicates, order and page.
func (b *Builder) Scope(order string, page Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = b.Filter()(db)
		if order != "" {
			db = db.Order(order)
		}
		return db.Limit(page.Limit).Offset(page.Offset)
	}
}

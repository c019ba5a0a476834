package query

import (
	"net/url"
	"strconv"
	"strings"

	"mindconnect/internal/domain"
	"mindconnect/internal/types"
)

// Params reads list parameters from a query string. Empty values are treated
// as absent; unrecognised keys are ignored by callers.
type Params struct {
	values url.Values
}

func FromValues(v url.Values) Params { return Params{values: v} }

func (p Params) String(key string) string {
	return strings.TrimSpace(p.values.Get(key))
}

func (p Params) Has(key string) bool { return p.String(key) != "" }

// ID parses key as a positive integer. Absent returns nil; a malformed value
// returns a validation error carrying code.
func (p Params) ID(key, code, message string) (*uint, error) {
	raw := p.String(key)
	if raw == "" {
		return nil, nil
	}
	id, err := types.ParseUint(raw)
	if err != nil {
		return nil, domain.Validation(code, message)
	}
	return &id, nil
}

// Bool parses key as "true" or "false" (any case). Absent returns nil.
func (p Params) Bool(key, code, message string) (*bool, error) {
	raw := strings.ToLower(p.String(key))
	switch raw {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, domain.Validation(code, message)
}

// Flag reports whether key is exactly "true".
func (p Params) Flag(key string) bool {
	return strings.EqualFold(p.String(key), "true")
}

// Page reads limit and offset, falling back silently on bad input.
func (p Params) Page(defaultLimit int) Page {
	limit, err := strconv.Atoi(p.String("limit"))
	if err != nil {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(p.String("offset"))
	if err != nil {
		offset = 0
	}
	return NewPage(limit, offset, defaultLimit)
}

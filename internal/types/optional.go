package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrNotUint = errors.New("value is not a positive integer")

// Optional is a JSON field that remembers whether its key was present in the
// request body and keeps the raw value so callers can type-check it themselves.
// A key set to null is present; a missing key is not.
type Optional struct {
	set bool
	raw json.RawMessage
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *Optional) UnmarshalJSON(data []byte) error {
	o.set = true
	o.raw = append(o.raw[:0], data...)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return o.raw, nil
}

// Of builds a present Optional from any JSON-encodable value.
func Of(v any) Optional {
	data, err := json.Marshal(v)
	if err != nil {
		return Optional{}
	}
	return Optional{set: true, raw: data}
}

func (o Optional) Present() bool { return o.set }

func (o Optional) Null() bool {
	return o.set && bytes.Equal(bytes.TrimSpace(o.raw), []byte("null"))
}

// Empty reports a falsy value: absent, null, "", 0 or false.
func (o Optional) Empty() bool {
	if !o.set || o.Null() {
		return true
	}
	switch string(bytes.TrimSpace(o.raw)) {
	case `""`, "0", "false":
		return true
	}
	return false
}

// Text returns the value when it is a JSON string.
func (o Optional) Text() (string, bool) {
	if !o.set || o.Null() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(o.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the value when it is a JSON boolean. Strings such as "true"
// are rejected.
func (o Optional) Bool() (bool, bool) {
	if !o.set || o.Null() {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(o.raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// Uint accepts a positive JSON integer or a string holding one.
func (o Optional) Uint() (uint, error) {
	if !o.set || o.Null() {
		return 0, ErrNotUint
	}
	var n json.Number
	if err := json.Unmarshal(o.raw, &n); err == nil {
		return parseUint(n.String())
	}
	var s string
	if err := json.Unmarshal(o.raw, &s); err == nil {
		return parseUint(strings.TrimSpace(s))
	}
	return 0, ErrNotUint
}

// ParseUint parses a positive base-10 integer as used for ids.
func ParseUint(s string) (uint, error) {
	return parseUint(strings.TrimSpace(s))
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, ErrNotUint
	}
	return uint(v), nil
}

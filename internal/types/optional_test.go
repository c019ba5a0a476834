package types

import (
	"encoding/json"
	"testing"
)

type body struct {
	Name     Optional `json:"name"`
	Approved Optional `json:"approved"`
	UserID   Optional `json:"userId"`
}

func decode(t *testing.T, s string) body {
	t.Helper()
	var b body
	if err := json.Unmarshal([]byte(s), &b); err != nil {
		t.Fatalf("unmarshal %s: %v", s, err)
	}
	return b
}

func TestOptionalPresence(t *testing.T) {
	b := decode(t, `{"name": null}`)
	if !b.Name.Present() || !b.Name.Null() {
		t.Errorf("null name: present=%v null=%v", b.Name.Present(), b.Name.Null())
	}
	if b.Approved.Present() {
		t.Error("absent key reported as present")
	}
	if !b.Approved.Empty() || !b.Name.Empty() {
		t.Error("absent and null must both be empty")
	}
}

func TestOptionalTypedAccess(t *testing.T) {
	b := decode(t, `{"name": "  Foo ", "approved": "true", "userId": "42"}`)
	if s, ok := b.Name.Text(); !ok || s != "  Foo " {
		t.Errorf("Text = %q, %v", s, ok)
	}
	if _, ok := b.Approved.Bool(); ok {
		t.Error("string \"true\" must not pass as a boolean")
	}
	if id, err := b.UserID.Uint(); err != nil || id != 42 {
		t.Errorf("Uint = %d, %v", id, err)
	}

	b = decode(t, `{"name": 7, "approved": false, "userId": 3}`)
	if _, ok := b.Name.Text(); ok {
		t.Error("number accepted as text")
	}
	if v, ok := b.Approved.Bool(); !ok || v {
		t.Errorf("Bool = %v, %v", v, ok)
	}
	if !b.Approved.Empty() {
		t.Error("false should be empty")
	}
	if id, err := b.UserID.Uint(); err != nil || id != 3 {
		t.Errorf("Uint = %d, %v", id, err)
	}
}

func TestOptionalUintRejects(t *testing.T) {
	for _, raw := range []string{`"abc"`, `-1`, `1.5`, `true`, `"0"`, `{}`} {
		o := Of(json.RawMessage(raw))
		if _, err := o.Uint(); err == nil {
			t.Errorf("Uint(%s) should fail", raw)
		}
	}
}

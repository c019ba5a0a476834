package service

import "time"

// stamp is the timestamp written to created_at/updated_at columns. Stores
// keep millisecond precision, so the value is truncated to match what a
// later read returns.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}

// nextStamp returns a stamp strictly after prev.
func nextStamp(now func() time.Time, prev time.Time) time.Time {
	t := stamp(now)
	if !t.After(prev) {
		t = prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return t
}

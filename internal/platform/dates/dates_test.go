package dates

import (
	"testing"
	"time"
)

func TestParseLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-08-14T10:30:00Z", true},
		{"2025-08-14T10:30:00+03:00", true},
		{"2025-08-14T10:30:00", true},
		{"2025-08-14", true},
		{"not-a-date", false},
		{"", false},
	}
	for _, c := range cases {
		if _, ok := Parse(c.in); ok != c.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	if !Before("2025-01-01", "2025-06-01") {
		t.Error("expected 2025-01-01 before 2025-06-01")
	}
	if !After("2025-06-01", "2025-01-01") {
		t.Error("expected 2025-06-01 after 2025-01-01")
	}
	if Before("garbage", "2025-06-01") {
		t.Error("unparseable date must not compare before")
	}
	if After("2025-06-01", "garbage") {
		t.Error("comparison against unparseable date must be false")
	}
}

func TestWithinHalfOpen(t *testing.T) {
	from := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	if !Within("2025-08-10T00:00:00Z", from, to) {
		t.Error("start of window should be included")
	}
	if Within("2025-08-11T00:00:00Z", from, to) {
		t.Error("end of window should be excluded")
	}
	if Within("2025-08-09T23:59:59Z", from, to) {
		t.Error("instant before window should be excluded")
	}
	if Within("garbage", from, to) {
		t.Error("unparseable date should be excluded")
	}
}

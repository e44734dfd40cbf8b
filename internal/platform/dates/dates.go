// Package dates parses the ISO-8601 strings this system stores instead of
// native time values. Timestamps and plain dates are both accepted; values
// that parse as neither sort first and never match a time window.
package dates

import "time"

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse returns the time encoded by s, and whether it parsed at all.
func Parse(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Before reports whether date string a sorts before b.
func Before(a, b string) bool {
	ta, _ := Parse(a)
	tb, _ := Parse(b)
	return ta.Before(tb)
}

// After reports whether date string a sorts after b.
func After(a, b string) bool {
	ta, _ := Parse(a)
	tb, _ := Parse(b)
	return ta.After(tb)
}

// Within reports whether date string s falls in [from, to).
func Within(s string, from, to time.Time) bool {
	t, ok := Parse(s)
	if !ok {
		return false
	}
	return !t.Before(from) && t.Before(to)
}

package logstore

import (
	"errors"
	"testing"
	"time"
)

var rangeNow = time.Date(2025, 12, 16, 20, 0, 0, 0, time.UTC)

func TestResolveRangeRelative(t *testing.T) {
	tests := []struct {
		param string
		want  time.Time
	}{
		{"5m", rangeNow.Add(-5 * time.Minute)},
		{"1h", rangeNow.Add(-time.Hour)},
		{"3d", rangeNow.AddDate(0, 0, -3)},
		{"2w", rangeNow.AddDate(0, 0, -14)},
		{"2W", rangeNow.AddDate(0, 0, -14)}, // units are case-insensitive
	}
	for _, tc := range tests {
		start, end, err := ResolveRange(tc.param, "", rangeNow, time.UTC)
		if err != nil {
			t.Errorf("ResolveRange(%q): %v", tc.param, err)
			continue
		}
		if !start.Equal(tc.want) {
			t.Errorf("ResolveRange(%q) start = %v, want %v", tc.param, start, tc.want)
		}
		if !end.IsZero() {
			t.Errorf("ResolveRange(%q) end = %v, want unbounded", tc.param, end)
		}
	}
}

func TestResolveRangeAbsolute(t *testing.T) {
	start, _, err := ResolveRange("2099-01-01T00:00:00Z", "", rangeNow, time.UTC)
	if err != nil {
		t.Fatalf("ResolveRange: %v", err)
	}
	if want := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}

	// Layouts without a zone are read in the reference timezone.
	jakarta := time.FixedZone("WIB", 7*60*60)
	start, _, err = ResolveRange("2025-12-16T08:00:00", "", rangeNow, jakarta)
	if err != nil {
		t.Fatalf("ResolveRange naive: %v", err)
	}
	if want := time.Date(2025, 12, 16, 8, 0, 0, 0, jakarta); !start.Equal(want) {
		t.Errorf("naive start = %v, want %v", start, want)
	}
}

func TestResolveRangeUnbounded(t *testing.T) {
	start, end, err := ResolveRange("", "", rangeNow, time.UTC)
	if err != nil {
		t.Fatalf("ResolveRange: %v", err)
	}
	if !start.IsZero() || !end.IsZero() {
		t.Errorf("empty params = (%v, %v), want both unbounded", start, end)
	}
}

func TestResolveRangeErrors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"garbage", "abc", ""},
		{"zero offset", "0m", ""},
		{"unknown unit", "5y", ""},
		{"garbage end", "", "not-a-time"},
		{"inverted", "2025-12-16T10:00:00Z", "2025-12-16T09:00:00Z"},
	}
	for _, tc := range tests {
		_, _, err := ResolveRange(tc.start, tc.end, rangeNow, time.UTC)
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("%s: err = %v, want ErrInvalidTimeFormat", tc.name, err)
		}
	}
}

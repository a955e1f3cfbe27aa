package logstore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativePattern = regexp.MustCompile(`^(\d+)([mhdw])$`)

var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an absolute timestamp. Layouts without a zone are
// interpreted in the reference timezone.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not ISO 8601", ErrInvalidTimeFormat, raw)
}

// ResolveRange turns raw start/end query parameters into an absolute
// half-open interval [start, end). A zero time means that side is unbounded.
// Each parameter is either an absolute timestamp or a relative offset
// counted back from now: "5m", "3h", "2d", "1w".
func ResolveRange(startParam, endParam string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	start, err := resolveParam("start_date", startParam, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := resolveParam("end_date", endParam, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidTimeFormat, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}

func resolveParam(name, raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if m := relativePattern.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("%w: %s %q: offset must be a positive integer",
				ErrInvalidTimeFormat, name, raw)
		}
		switch m[2] {
		case "m":
			return now.Add(-time.Duration(n) * time.Minute), nil
		case "h":
			return now.Add(-time.Duration(n) * time.Hour), nil
		case "d":
			return now.AddDate(0, 0, -n), nil
		case "w":
			return now.AddDate(0, 0, -7*n), nil
		}
	}
	t, err := ParseTimestamp(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q: want ISO 8601 or a relative offset like 5m, 1h, 3d, 2w",
			ErrInvalidTimeFormat, name, raw)
	}
	return t, nil
}

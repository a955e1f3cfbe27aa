package helper

import (
	"time"

	"github.com/google/uuid"
)

func GenerateUID() string {
	return uuid.New().String()
}

// LoadTimezone resolves an IANA timezone name into the reference location
// used for partitioning and retention. Unknown or empty names fall back to
// UTC.
func LoadTimezone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

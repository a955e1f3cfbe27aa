package logstore

import (
	"fmt"
	"strings"
	"time"
)

const (
	partitionPrefix     = "app-"
	partitionSuffix     = ".log"
	partitionDateLayout = "2006-01-02"
)

// PartitionName returns the file name of the partition holding entries for
// the calendar day of ts in the reference timezone, e.g. "app-2025-12-16.log".
func PartitionName(ts time.Time, loc *time.Location) string {
	return partitionPrefix + ts.In(loc).Format(partitionDateLayout) + partitionSuffix
}

// PartitionDate is the inverse of PartitionName: it recovers the calendar
// day embedded in a partition file name, as midnight in the reference
// timezone. Names that do not follow the partition grammar return an error
// so callers can skip them.
func PartitionDate(name string, loc *time.Location) (time.Time, error) {
	if !strings.HasPrefix(name, partitionPrefix) || !strings.HasSuffix(name, partitionSuffix) {
		return time.Time{}, fmt.Errorf("not a partition file: %s", name)
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, partitionPrefix), partitionSuffix)
	day, err := time.ParseInLocation(partitionDateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("partition %s: %w", name, err)
	}
	return day, nil
}

package logstore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/valyala/fastjson"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"
)

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 10000

	// maxLineBytes bounds a single persisted entry during scans.
	maxLineBytes = 1 << 20
)

// Filter selects entries for a query. Zero Start/End mean unbounded on that
// side; the interval is half-open, start <= ts < end.
type Filter struct {
	Service string // exact match
	Level   string // case-insensitive match
	Start   time.Time
	End     time.Time
	Limit   int
}

// Result is the outcome of one query scan.
type Result struct {
	Entries   []data.LogEntry
	Count     int
	Malformed int // lines skipped because they failed to parse
}

// Query scans every partition overlapping the filter's time range in
// chronological order and returns at most Limit matching entries, oldest
// first. A partition that vanishes mid-query or a line that fails to parse
// degrades the result, never the whole query. Count is the number of
// entries actually returned; the scan stops once Limit is reached.
func (s *Store) Query(ctx context.Context, filter Filter) (*Result, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}

	partitions, err := s.candidatePartitions(filter)
	if err != nil {
		return nil, err
	}

	res := &Result{Entries: make([]data.LogEntry, 0)}
	var parser fastjson.Parser
	for _, name := range partitions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(res.Entries) >= filter.Limit {
			break
		}
		s.scanPartition(filepath.Join(s.dir, name), filter, &parser, res)
	}
	res.Count = len(res.Entries)
	return res, nil
}

// candidatePartitions lists partition files whose calendar day overlaps the
// filter range, oldest first. Files without date information are skipped;
// partitions only prune at day granularity, entries are re-checked line by
// line.
func (s *Store) candidatePartitions(filter Filter) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "readdir", Path: s.dir, Err: err}
	}

	type candidate struct {
		name string
		day  time.Time
	}
	var candidates []candidate
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		day, err := PartitionDate(ent.Name(), s.loc)
		if err != nil {
			continue
		}
		dayEnd := day.AddDate(0, 0, 1)
		if !filter.Start.IsZero() && !dayEnd.After(filter.Start) {
			continue // whole day before the range
		}
		if !filter.End.IsZero() && !day.Before(filter.End) {
			continue // whole day at or past the range end
		}
		candidates = append(candidates, candidate{ent.Name(), day})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].day.Before(candidates[j].day) })

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names, nil
}

func (s *Store) scanPartition(path string, filter Filter, parser *fastjson.Parser, res *Result) {
	f, err := os.Open(path)
	if err != nil {
		// Deleted between enumeration and open, or unreadable: zero matches.
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("partition", path).Msg("skipping unreadable partition")
		}
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if len(res.Entries) >= filter.Limit {
			return
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		v, err := parser.ParseBytes(line)
		if err != nil {
			res.Malformed++
			continue
		}
		if !matches(v, filter) {
			continue
		}
		var entry data.LogEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			res.Malformed++
			continue
		}
		res.Entries = append(res.Entries, entry)
	}
	if err := sc.Err(); err != nil {
		s.log.Warn().Err(err).Str("partition", path).Msg("partition scan aborted")
	}
}

// matches applies the schema check and all filters against a parsed line
// before the full entry is materialized.
func matches(v *fastjson.Value, filter Filter) bool {
	ts, err := time.Parse(time.RFC3339Nano, string(v.GetStringBytes("timestamp")))
	if err != nil {
		return false // no usable timestamp
	}
	if string(v.GetStringBytes("service")) == "" || string(v.GetStringBytes("message")) == "" {
		return false
	}
	if !filter.Start.IsZero() && ts.Before(filter.Start) {
		return false
	}
	if !filter.End.IsZero() && !ts.Before(filter.End) {
		return false
	}
	if filter.Service != "" && string(v.GetStringBytes("service")) != filter.Service {
		return false
	}
	if filter.Level != "" && !strings.EqualFold(string(v.GetStringBytes("level")), filter.Level) {
		return false
	}
	return true
}

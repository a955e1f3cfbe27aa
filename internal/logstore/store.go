package logstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"
)

// Store owns the append path into daily NDJSON partition files. It is safe
// for concurrent use: each append is a single O_APPEND write of one complete
// line, so concurrent appenders never interleave or truncate each other.
type Store struct {
	dir string
	loc *time.Location
	log zerolog.Logger
	now func() time.Time
}

func NewStore(dir string, loc *time.Location, log zerolog.Logger) *Store {
	return &Store{dir: dir, loc: loc, log: log, now: time.Now}
}

// Dir returns the partition directory.
func (s *Store) Dir() string { return s.dir }

// Location returns the reference timezone used for partitioning.
func (s *Store) Location() *time.Location { return s.loc }

// Append validates entry, stamps it with the ingestion time if it carries no
// timestamp, and durably appends it to the partition of its calendar day.
// When Append returns nil the entry has been fsynced and is visible to any
// subsequent reader, including one in another process.
func (s *Store) Append(entry *data.LogEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().In(s.loc)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return &StorageError{Op: "encode", Path: s.dir, Err: err}
	}
	line = append(line, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: s.dir, Err: err}
	}

	path := filepath.Join(s.dir, PartitionName(entry.Timestamp, s.loc))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &StorageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	// One write per entry keeps concurrent appenders from interleaving.
	if _, err := f.Write(line); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &StorageError{Op: "sync", Path: path, Err: err}
	}
	return nil
}

func validateEntry(entry *data.LogEntry) error {
	switch {
	case entry.Service == "":
		return &ValidationError{Field: "service", Reason: "must not be empty"}
	case entry.Message == "":
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	case entry.Level == "":
		return &ValidationError{Field: "level", Reason: "must not be empty"}
	}
	return nil
}

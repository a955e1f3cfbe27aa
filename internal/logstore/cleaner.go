package logstore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// cleanupHour is the wall-clock hour of the daily pass, in the reference
// timezone.
const cleanupHour = 2

// Cleaner deletes partitions older than the retention window. One instance
// runs per process, started during initialization and stopped cooperatively
// during shutdown; it owns its own cancellation signal.
type Cleaner struct {
	store         *Store
	retentionDays int
	log           zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewCleaner(store *Store, retentionDays int, log zerolog.Logger) *Cleaner {
	return &Cleaner{store: store, retentionDays: retentionDays, log: log}
}

// Start launches the background task. Starting a running Cleaner is a no-op.
func (c *Cleaner) Start() {
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(ctx)
	c.log.Info().
		Int("retention_days", c.retentionDays).
		Int("hour", cleanupHour).
		Msg("log cleanup scheduler started")
}

// Stop cancels the task and waits for it to exit. A deletion already in
// flight finishes; no file is left half-removed. Stopping a stopped Cleaner
// is a no-op.
func (c *Cleaner) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.log.Info().Msg("log cleanup scheduler stopped")
}

func (c *Cleaner) run(ctx context.Context) {
	defer close(c.done)

	timer := time.NewTimer(time.Until(c.nextRun(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			c.RunOnce(time.Now())
			timer.Reset(time.Until(c.nextRun(time.Now())))
		}
	}
}

// nextRun returns the next occurrence of the cleanup wall-clock time
// strictly after now.
func (c *Cleaner) nextRun(now time.Time) time.Time {
	now = now.In(c.store.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), cleanupHour, 0, 0, 0, c.store.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunOnce performs a single cleanup pass. Partitions older than the
// retention window are removed; the current day's partition is always kept,
// whatever the configured retention. A single file failure never aborts the
// pass.
func (c *Cleaner) RunOnce(now time.Time) {
	entries, err := os.ReadDir(c.store.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Error().Err(err).Str("dir", c.store.dir).Msg("log cleanup: cannot read partition directory")
		}
		return
	}

	now = now.In(c.store.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.store.loc)

	var scanned, deleted, skipped int
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		scanned++
		day, err := PartitionDate(ent.Name(), c.store.loc)
		if err != nil {
			skipped++
			c.log.Warn().Str("file", ent.Name()).Msg("log cleanup: unrecognized file name, skipping")
			continue
		}
		age := int(today.Sub(day).Hours() / 24)
		if age <= c.retentionDays || day.Equal(today) {
			continue
		}
		path := filepath.Join(c.store.dir, ent.Name())
		if err := os.Remove(path); err != nil {
			c.log.Error().Err(err).Str("partition", ent.Name()).Msg("log cleanup: delete failed")
			continue
		}
		deleted++
		c.log.Info().Str("partition", ent.Name()).Int("age_days", age).Msg("log cleanup: expired partition deleted")
	}

	c.log.Info().
		Int("scanned", scanned).
		Int("deleted", deleted).
		Int("skipped", skipped).
		Int("retention_days", c.retentionDays).
		Msg("log cleanup pass completed")
}

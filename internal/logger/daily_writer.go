package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
)

// dailyWriter appends to the partition file of the current day, reopening
// the file when the calendar day rolls over. zerolog hands it one complete
// line per event, so each write lands as a single O_APPEND line alongside
// ingested entries.
type dailyWriter struct {
	mu   sync.Mutex
	dir  string
	loc  *time.Location
	name string
	f    *os.File
}

func newDailyWriter(dir string, loc *time.Location) *dailyWriter {
	return &dailyWriter{dir: dir, loc: loc}
}

func (w *dailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	name := logstore.PartitionName(time.Now(), w.loc)
	if w.f == nil || name != w.name {
		if w.f != nil {
			w.f.Close()
		}
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return 0, err
		}
		f, err := os.OpenFile(filepath.Join(w.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, err
		}
		w.f = f
		w.name = name
	}
	return w.f.Write(p)
}

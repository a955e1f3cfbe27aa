package data

import "time"

// LogEntry is one immutable log record as persisted in a daily partition.
// Every entry is stored as a single self-contained JSON object on its own
// line.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	Error     *LogError      `json:"error,omitempty"`
}

// LogError carries structured error details for ERROR-level entries.
type LogError struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

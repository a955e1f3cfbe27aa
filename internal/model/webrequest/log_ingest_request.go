package webrequest

import (
	"errors"
	"strings"
	"time"
)

// logLevels is the set of accepted ingest levels, checked case-insensitively.
var logLevels = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL"}

type LogErrorPayload struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

type LogIngestRequest struct {
	Timestamp string           `json:"timestamp"`
	Level     string           `json:"level"`
	Service   string           `json:"service"`
	Message   string           `json:"message"`
	Context   map[string]any   `json:"context"`
	Error     *LogErrorPayload `json:"error"`
}

// ValidLogLevel is an ozzo rule for the level field.
func ValidLogLevel(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, level := range logLevels {
		if strings.EqualFold(s, level) {
			return nil
		}
	}
	return errors.New("must be one of DEBUG, INFO, WARN, WARNING, ERROR, CRITICAL")
}

// ValidTimestamp is an ozzo rule accepting ISO 8601 timestamps.
func ValidTimestamp(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return errors.New("must be an ISO 8601 timestamp")
}

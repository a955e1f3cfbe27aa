package webresponse

import "github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"

// LogIngestResponse acknowledges a recorded entry.
type LogIngestResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// LogQueryResponse returns matched entries plus an echo of the resolved
// query parameters for client-side debugging.
type LogQueryResponse struct {
	Logs  []data.LogEntry `json:"logs"`
	Count int             `json:"count"`
	Query map[string]any  `json:"query"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

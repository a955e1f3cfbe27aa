package log_service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ozzo "github.com/go-ozzo/ozzo-validation"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/helper"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
)

type LogServiceImpl struct {
	store *logstore.Store
}

func (s *LogServiceImpl) IngestLog(c *gin.Context, request webrequest.LogIngestRequest) (any, int) {
	if errs := helper.ValidateStruct(nil, &request,
		helper.Field(&request.Service, ozzo.Required),
		helper.Field(&request.Message, ozzo.Required),
		helper.Field(&request.Level, ozzo.Required, ozzo.By(webrequest.ValidLogLevel)),
		helper.Field(&request.Timestamp, ozzo.By(webrequest.ValidTimestamp)),
	); errs != nil {
		return webresponse.JSONResponse{
			Error:   true,
			Message: "Invalid log entry",
			Data:    errs,
		}, http.StatusBadRequest
	}

	entry := data.LogEntry{
		Level:   request.Level,
		Service: request.Service,
		Message: request.Message,
		Context: request.Context,
	}
	if request.Error != nil {
		entry.Error = &data.LogError{
			Type:    request.Error.Type,
			Message: request.Error.Message,
			Stack:   request.Error.Stack,
		}
	}
	if request.Timestamp != "" {
		ts, err := logstore.ParseTimestamp(request.Timestamp, s.store.Location())
		if err != nil {
			return webresponse.JSONResponse{Error: true, Message: err.Error()}, http.StatusBadRequest
		}
		entry.Timestamp = ts
	}

	if err := s.store.Append(&entry); err != nil {
		var verr *logstore.ValidationError
		if errors.As(err, &verr) {
			return webresponse.JSONResponse{Error: true, Message: verr.Error()}, http.StatusBadRequest
		}
		logger.AppLogger.Error().Err(err).Msg("failed to record log entry")
		return webresponse.JSONResponse{Error: true, Message: "Failed to record log entry"}, http.StatusInternalServerError
	}

	logger.AppLogger.Info().
		Str("producer", entry.Service).
		Str("producer_level", entry.Level).
		Msg("log ingested")

	return webresponse.LogIngestResponse{
		Status:    "success",
		Message:   "Log entry recorded",
		Timestamp: entry.Timestamp.Format(time.RFC3339Nano),
	}, http.StatusCreated
}

func (s *LogServiceImpl) QueryLogs(c *gin.Context, request webrequest.LogQueryRequest) (any, int) {
	if errs := helper.ValidateStruct(nil, &request,
		helper.Field(&request.Limit, ozzo.Required, ozzo.Min(1), ozzo.Max(logstore.MaxQueryLimit)),
	); errs != nil {
		return webresponse.JSONResponse{
			Error:   true,
			Message: "Invalid query parameters",
			Data:    errs,
		}, http.StatusBadRequest
	}

	now := time.Now().In(s.store.Location())
	start, end, err := logstore.ResolveRange(request.StartDate, request.EndDate, now, s.store.Location())
	if err != nil {
		return webresponse.JSONResponse{Error: true, Message: err.Error()}, http.StatusBadRequest
	}

	result, err := s.store.Query(c.Request.Context(), logstore.Filter{
		Service: request.Service,
		Level:   request.Level,
		Start:   start,
		End:     end,
		Limit:   request.Limit,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return webresponse.JSONResponse{Error: true, Message: "Query canceled"}, http.StatusBadRequest
		}
		logger.AppLogger.Error().Err(err).Msg("log query failed")
		return webresponse.JSONResponse{Error: true, Message: "Failed to query logs"}, http.StatusInternalServerError
	}

	if result.Malformed > 0 {
		logger.AppLogger.Warn().Int("malformed", result.Malformed).Msg("skipped malformed log lines during query")
	}

	return webresponse.LogQueryResponse{
		Logs:  result.Entries,
		Count: result.Count,
		Query: map[string]any{
			"service":      request.Service,
			"level":        request.Level,
			"start_date":   request.StartDate,
			"end_date":     request.EndDate,
			"limit":        request.Limit,
			"parsed_start": formatBound(start),
			"parsed_end":   formatBound(end),
		},
	}, http.StatusOK
}

// formatBound renders a resolved bound, or nil for an unbounded side.
func formatBound(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func NewLogService(store *logstore.Store) LogService {
	return &LogServiceImpl{
		store: store,
	}
}

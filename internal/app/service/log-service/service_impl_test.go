package log_service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
)

func newTestService(t *testing.T) LogService {
	t.Helper()
	store := logstore.NewStore(t.TempDir(), time.UTC, zerolog.Nop())
	return NewLogService(store)
}

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestIngestLogRecordsEntry(t *testing.T) {
	service := newTestService(t)
	c := newTestContext(t)

	response, statusCode := service.IngestLog(c, webrequest.LogIngestRequest{
		Level:   "ERROR",
		Service: "payment-api",
		Message: "charge declined",
		Context: map[string]any{"order_id": "ord-17"},
	})

	if statusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %+v", statusCode, response)
	}
	ack, ok := response.(webresponse.LogIngestResponse)
	if !ok {
		t.Fatalf("unexpected response type %T", response)
	}
	if ack.Status != "success" {
		t.Errorf("status = %q, want success", ack.Status)
	}
	if _, err := time.Parse(time.RFC3339Nano, ack.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", ack.Timestamp, err)
	}
}

func TestIngestLogValidation(t *testing.T) {
	service := newTestService(t)
	c := newTestContext(t)

	cases := []struct {
		name    string
		request webrequest.LogIngestRequest
	}{
		{"missing service", webrequest.LogIngestRequest{Level: "INFO", Message: "m"}},
		{"missing message", webrequest.LogIngestRequest{Level: "INFO", Service: "svc"}},
		{"missing level", webrequest.LogIngestRequest{Service: "svc", Message: "m"}},
		{"unknown level", webrequest.LogIngestRequest{Level: "LOUD", Service: "svc", Message: "m"}},
		{"bad timestamp", webrequest.LogIngestRequest{Level: "INFO", Service: "svc", Message: "m", Timestamp: "yesterday"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, statusCode := service.IngestLog(c, tc.request)
			if statusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", statusCode)
			}
		})
	}
}

func TestQueryLogsRoundTrip(t *testing.T) {
	service := newTestService(t)
	c := newTestContext(t)

	for _, ingest := range []webrequest.LogIngestRequest{
		{Level: "INFO", Service: "payment-api", Message: "charge ok"},
		{Level: "ERROR", Service: "payment-api", Message: "charge declined"},
		{Level: "INFO", Service: "auth-api", Message: "login ok"},
	} {
		if _, statusCode := service.IngestLog(c, ingest); statusCode != http.StatusCreated {
			t.Fatalf("ingest failed with status %d", statusCode)
		}
	}

	response, statusCode := service.QueryLogs(c, webrequest.LogQueryRequest{
		Service: "payment-api",
		Limit:   100,
	})
	if statusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %+v", statusCode, response)
	}
	result, ok := response.(webresponse.LogQueryResponse)
	if !ok {
		t.Fatalf("unexpected response type %T", response)
	}
	if result.Count != 2 {
		t.Fatalf("count = %d, want 2", result.Count)
	}
	for _, entry := range result.Logs {
		if entry.Service != "payment-api" {
			t.Errorf("unexpected service %q in results", entry.Service)
		}
	}
	if result.Query["limit"] != 100 {
		t.Errorf("query echo limit = %v, want 100", result.Query["limit"])
	}
}

func TestQueryLogsLimitValidation(t *testing.T) {
	service := newTestService(t)
	c := newTestContext(t)

	for _, limit := range []int{0, -5, logstore.MaxQueryLimit + 1} {
		if _, statusCode := service.QueryLogs(c, webrequest.LogQueryRequest{Limit: limit}); statusCode != http.StatusBadRequest {
			t.Errorf("limit %d: expected 400, got %d", limit, statusCode)
		}
	}
}

func TestQueryLogsBadRange(t *testing.T) {
	service := newTestService(t)
	c := newTestContext(t)

	_, statusCode := service.QueryLogs(c, webrequest.LogQueryRequest{
		StartDate: "5y",
		Limit:     100,
	})
	if statusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid relative offset, got %d", statusCode)
	}
}

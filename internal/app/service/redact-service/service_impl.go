package redact_service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/helper"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/data"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/pdf"
)

type RedactServiceImpl struct {
	store *logstore.Store
}

func (s *RedactServiceImpl) Redact(c *gin.Context, file *multipart.FileHeader, redactionsJSON string) (*RedactResult, *webresponse.JSONResponse, int) {
	if resp := validateUpload(file); resp != nil {
		return nil, resp, http.StatusBadRequest
	}

	var coords []webrequest.RedactionCoordinate
	if redactionsJSON != "" {
		if err := json.Unmarshal([]byte(redactionsJSON), &coords); err != nil {
			return nil, &webresponse.JSONResponse{
				Error:   true,
				Message: "Invalid redactions payload: " + err.Error(),
			}, http.StatusBadRequest
		}
	}
	for i, coord := range coords {
		if err := coord.Validate(); err != nil {
			return nil, &webresponse.JSONResponse{
				Error:   true,
				Message: fmt.Sprintf("Invalid redaction region at index %d: %s", i, err.Error()),
			}, http.StatusBadRequest
		}
	}

	src, err := file.Open()
	if err != nil {
		return nil, &webresponse.JSONResponse{Error: true, Message: "Failed to read upload"}, http.StatusBadRequest
	}
	defer src.Close()

	input, err := io.ReadAll(src)
	if err != nil {
		return nil, &webresponse.JSONResponse{Error: true, Message: "Failed to read upload"}, http.StatusBadRequest
	}

	outPath := filepath.Join(os.TempDir(), "redacted-"+helper.GenerateUID()+".pdf")
	outFile, err := os.Create(outPath)
	if err != nil {
		logger.AppLogger.Error().Err(err).Str("path", outPath).Msg("failed to stage output file")
		return nil, &webresponse.JSONResponse{Error: true, Message: "Failed to process document"}, http.StatusInternalServerError
	}

	applied, err := pdf.Redact(bytes.NewReader(input), outFile, coords)
	if cerr := outFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		logger.AppLogger.Error().Err(err).Str("filename", file.Filename).Msg("redaction failed")
		return nil, &webresponse.JSONResponse{
			Error:   true,
			Message: "Failed to redact document",
		}, http.StatusUnprocessableEntity
	}

	s.recordRedaction(file.Filename, applied)

	return &RedactResult{
		Filename: redactedName(file.Filename),
		Path:     outPath,
		Applied:  applied,
	}, nil, http.StatusOK
}

// recordRedaction emits the single audit entry for a processed document.
// A storage failure here must not fail the request that already produced
// a redacted file.
func (s *RedactServiceImpl) recordRedaction(filename string, applied int) {
	entry := data.LogEntry{
		Level:   "INFO",
		Service: "pdf-processing",
		Message: fmt.Sprintf("Applied %d redactions to %s", applied, filename),
		Context: map[string]any{
			"filename":        filename,
			"redaction_count": applied,
		},
	}
	if err := s.store.Append(&entry); err != nil {
		logger.AppLogger.Warn().Err(err).Str("filename", filename).Msg("failed to record redaction audit entry")
	}
}

func validateUpload(file *multipart.FileHeader) *webresponse.JSONResponse {
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return &webresponse.JSONResponse{Error: true, Message: "Only PDF files are accepted"}
	}
	contentType := file.Header.Get("Content-Type")
	switch contentType {
	case "", "application/pdf", "application/x-pdf", "application/octet-stream":
		return nil
	default:
		return &webresponse.JSONResponse{Error: true, Message: "Unsupported content type: " + contentType}
	}
}

func redactedName(original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	return base + "_redacted.pdf"
}

func NewRedactService(store *logstore.Store) RedactService {
	return &RedactServiceImpl{
		store: store,
	}
}

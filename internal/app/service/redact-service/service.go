package redact_service

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
)

// RedactResult points at a redacted document staged on disk. The caller
// owns the file at Path and removes it after serving.
type RedactResult struct {
	Filename string
	Path     string
	Applied  int
}

type RedactService interface {
	Redact(c *gin.Context, file *multipart.FileHeader, redactionsJSON string) (*RedactResult, *webresponse.JSONResponse, int)
}

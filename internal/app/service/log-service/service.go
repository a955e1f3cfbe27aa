package log_service

import (
	"github.com/gin-gonic/gin"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
)

type LogService interface {
	IngestLog(c *gin.Context, request webrequest.LogIngestRequest) (any, int)
	QueryLogs(c *gin.Context, request webrequest.LogQueryRequest) (any, int)
}

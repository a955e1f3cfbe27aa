package log_handler

import "github.com/gin-gonic/gin"

type LogHandler interface {
	IngestLog(c *gin.Context)
	QueryLogs(c *gin.Context)
}

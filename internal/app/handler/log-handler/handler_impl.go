package log_handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	log_service "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/service/log-service"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/helper"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
)

type LogHandlerImpl struct {
	logService log_service.LogService
}

func (h *LogHandlerImpl) IngestLog(c *gin.Context) {
	var request webrequest.LogIngestRequest
	if err := helper.ReadJSON(c, &request); err != nil {
		helper.WriteJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, statusCode := h.logService.IngestLog(c, request)

	helper.WriteJSON(c, statusCode, response)
}

func (h *LogHandlerImpl) QueryLogs(c *gin.Context) {
	var request webrequest.LogQueryRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		helper.WriteJSON(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, statusCode := h.logService.QueryLogs(c, request)

	helper.WriteJSON(c, statusCode, response)
}

func NewLogHandler(logService log_service.LogService) LogHandler {
	return &LogHandlerImpl{
		logService: logService,
	}
}

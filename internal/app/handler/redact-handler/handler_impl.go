package redact_handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	redact_service "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/service/redact-service"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/helper"
)

type RedactHandlerImpl struct {
	redactService redact_service.RedactService
}

func (h *RedactHandlerImpl) Redact(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		helper.WriteJSON(c, http.StatusBadRequest, gin.H{"error": "A PDF file is required"})
		return
	}

	result, errResponse, statusCode := h.redactService.Redact(c, file, c.PostForm("redactions"))
	if errResponse != nil {
		helper.WriteJSON(c, statusCode, errResponse)
		return
	}
	defer os.Remove(result.Path)

	c.Header("X-Redactions-Applied", strconv.Itoa(result.Applied))
	c.FileAttachment(result.Path, result.Filename)
}

func NewRedactHandler(redactService redact_service.RedactService) RedactHandler {
	return &RedactHandlerImpl{
		redactService: redactService,
	}
}

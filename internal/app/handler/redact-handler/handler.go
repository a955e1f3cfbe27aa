package redact_handler

import "github.com/gin-gonic/gin"

type RedactHandler interface {
	Redact(c *gin.Context)
}

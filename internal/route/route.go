package route

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	log_handler "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/handler/log-handler"
	redact_handler "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/handler/redact-handler"
	log_service "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/service/log-service"
	redact_service "github.com/syncho-labs/Doct-Redaction-FastApp/internal/app/service/redact-service"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logstore"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/middleware"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webresponse"
)

func InitRoutes(store *logstore.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.HTTPLogger())
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: addAllowedOrigins,
		AllowMethods:    []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition", "X-Redactions-Applied"},
		MaxAge:          1 * time.Hour,
	}))

	logService := log_service.NewLogService(store)
	logHandler := log_handler.NewLogHandler(logService)

	redactService := redact_service.NewRedactService(store)
	redactHandler := redact_handler.NewRedactHandler(redactService)

	api := router.Group("/api", middleware.AuthMiddleware(os.Getenv("API_BEARER_TOKEN")))
	{
		api.POST("/logs", logHandler.IngestLog)
		api.GET("/logs", gzip.Gzip(gzip.DefaultCompression), logHandler.QueryLogs)
	}

	router.POST("/redact", redactHandler.Redact)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, webresponse.HealthResponse{
			Status:  "healthy",
			Service: "PDF Redactor API",
			Version: "1.1.0",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "PDF Redactor API",
			"endpoints": gin.H{
				"POST /redact":   "Redact regions of an uploaded PDF",
				"POST /api/logs": "Record a log entry",
				"GET /api/logs":  "Query recorded log entries",
				"GET /health":    "Service health",
			},
		})
	})

	return router
}

func addAllowedOrigins(origin string) bool {
	if configured := os.Getenv("CORS_ORIGINS"); configured != "" {
		for _, allowed := range strings.Split(configured, ",") {
			if origin == strings.TrimSpace(allowed) {
				return true
			}
		}
		return false
	}
	return strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1")
}

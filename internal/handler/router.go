package handler

import (
	"net/http"

	"github.com/DriveSync-Logistics/service-dispatch/internal/application"
	"github.com/DriveSync-Logistics/service-dispatch/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the service's gin engine: global middleware, health
// check, and all handler routes.
func NewRouter(service *application.DispatchService, log *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "service-dispatch"})
	})

	NewFleetHandler(service).RegisterRoutes(&router.RouterGroup)
	NewAccountHandler(service).RegisterRoutes(&router.RouterGroup)
	NewDispatchHandler(service).RegisterRoutes(&router.RouterGroup)

	return router
}

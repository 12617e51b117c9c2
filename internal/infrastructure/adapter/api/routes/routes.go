package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/logsnack/logsnack/internal/domain/logger"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/handler"
	"github.com/logsnack/logsnack/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, logHandler *handler.LogHandler) {
	// Ingestion and query
	// POST /log
	router.POST("/log", logHandler.Submit)

	// GET /logs?limit=N
	router.GET("/logs", logHandler.Recent)

	// Threshold administration
	configRoutes := router.Group("/config")
	{
		// GET /config/level
		configRoutes.GET("/level", logHandler.GetLevel)

		// PUT /config/level
		configRoutes.PUT("/level", logHandler.SetLevel)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logs *logger.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logs))
	router.Use(middleware.AccessLog(logs))
}

// Package server assembles the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/handlers"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(
	billHandler *handlers.BillHandler,
	businessHandler *handlers.BusinessHandler,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "gst-invoice",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/business", businessHandler.Get)
		api.PUT("/business", businessHandler.Save)

		api.GET("/states", billHandler.States)

		api.POST("/bill/items/normalize", billHandler.NormalizeItems)
		api.POST("/bill/calculate", billHandler.Calculate)
		api.POST("/bill/validate", billHandler.Validate)
		api.POST("/bill/export/pdf", billHandler.ExportPDF)
		api.POST("/bill/export/xlsx", billHandler.ExportXLSX)

		api.POST("/gst/reverse", billHandler.ReverseGST)
	}

	return router
}

// loggingMiddleware logs HTTP requests with zap.
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

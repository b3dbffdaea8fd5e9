package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler, rateLimit gin.HandlerFunc, metrics http.Handler) {
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := router.Group("/api/v1")
	if rateLimit != nil {
		v1.Use(rateLimit)
	}
	{
		v1.POST("/repurpose", handler.Repurpose) // POST /api/v1/repurpose
		v1.GET("/channels", handler.Channels)    // GET /api/v1/channels
		v1.GET("/audiences", handler.Audiences)  // GET /api/v1/audiences
	}
}

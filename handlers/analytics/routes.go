package analytics

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to admin analytics
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		analytics.GET("/login-attempts", GetLoginAttempts)
		analytics.GET("/visits", GetVisits)
		analytics.GET("/export", ExportAnalytics)
		analytics.GET("/ws", ActivityFeed)
	}
}

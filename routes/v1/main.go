package v1

import (
	"net/http"

	"api/handlers/analytics"
	"api/handlers/auth"
	"api/handlers/games"
	"api/handlers/gametypes"
	"api/handlers/suggestions"
	"api/handlers/users"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	games.RegisterRoutes(v1)
	gametypes.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	suggestions.RegisterRoutes(v1)
	analytics.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}

// RegisterPingRoutes registers the liveness endpoint
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

package auth

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Failed-password cooldowns are handled per session inside Login; this
	// limiter only caps raw request volume per IP
	loginRateLimiter := middleware.NewRateLimiter(60, 30)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiterMiddleware(loginRateLimiter), Login)
		auth.GET("/check", middleware.AuthMiddleware(), CheckAuth)
		auth.POST("/logout", Logout)
	}
}

package suggestions

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to game suggestions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	sugg := r.Group("/suggestions")
	{
		sugg.POST("/", CreateSuggestion)
		sugg.GET("/", middleware.AuthMiddleware(), middleware.AdminMiddleware(), GetSuggestions)
	}
}

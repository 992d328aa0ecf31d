package games

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the games catalog
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	browseRateLimiter := middleware.NewRateLimiter(600, 100)

	games := r.Group("/games")
	{
		// Browsing is open to anonymous visitors
		games.GET("/", middleware.RateLimiterMiddleware(browseRateLimiter), GetGames)
		games.GET("/:id", GetGame)

		// Mutations are reserved to administrators
		admin := games.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/", CreateGame)
			admin.PUT("/:id", UpdateGame)
			admin.DELETE("/:id", DeleteGame)
			admin.GET("/:id/revisions", GetGameRevisions)
		}
	}
}

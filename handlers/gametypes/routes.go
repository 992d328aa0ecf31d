package gametypes

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the game type vocabulary
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	types := r.Group("/game-types")
	{
		types.GET("/", GetGameTypes)

		admin := types.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/", CreateGameType)
			admin.DELETE("/:id", DeleteGameType)
		}
	}
}

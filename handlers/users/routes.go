package users

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user account management
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		user.GET("/", GetUsers)
		user.POST("/", CreateUser)
		user.POST("/:id/reset-password", ResetPassword)
		user.DELETE("/:id", DeleteUser)
	}
}

package main

import (
	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "api/docs"
)

// @title GameBase API
// @version 1.0
// @description Catalog browsing and administration API for the GameBase games database.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables")
	}
	config.LoadEnv()

	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Data-Source"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.SessionMiddleware())

	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()

	log.Infof("Starting server on port %s", config.APIPort)
	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"strconv"

	"dmforge/config"
	"dmforge/routes"
	"dmforge/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from a .env file if one exists
	if err := godotenv.Load(); err != nil {
		logrus.Infoln("No .env file found")
	}

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	services.InitDMService(cfg)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	logrus.Infof("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.Cors.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.LoadHTMLGlob("templates/*")

	routes.SetupDMRoutes(router)

	return router
}

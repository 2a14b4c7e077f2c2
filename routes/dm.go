package routes

import (
	"dmforge/controllers"

	"github.com/gin-gonic/gin"
)

// SetupDMRoutes sets up the outreach DM endpoints
func SetupDMRoutes(router *gin.Engine) {
	router.GET("/", controllers.Home)
	router.POST("/generate_dm_ui", controllers.GenerateDMUI)
	router.POST("/generate_dm", controllers.GenerateDM)
	router.POST("/stream_dm", controllers.StreamDM)
}

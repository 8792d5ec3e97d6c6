package routes

import (
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitChecklistRoutes 初始化待辦清單相關路由
func InitChecklistRoutes(router *gin.Engine) {
	checklistController := controllers.NewChecklistController()

	checklistGroup := router.Group("/api/checklist")
	{
		checklistGroup.GET("", checklistController.List)
		checklistGroup.GET("/pending", checklistController.ListPending)
		checklistGroup.POST("", checklistController.Create)
		checklistGroup.PATCH("/:id", checklistController.Update)
		checklistGroup.DELETE("/:id", checklistController.Delete)
	}
}

package routes

import (
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitPickingRoutes 初始化揀貨表相關路由
func InitPickingRoutes(router *gin.Engine) {
	pickingController := controllers.NewPickingController()

	router.GET("/api/picking-list", pickingController.List)
	router.GET("/api/combined-picking-list", pickingController.Combined)
}

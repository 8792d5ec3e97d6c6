package routes

import (
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitOrderRoutes 初始化官網訂單相關路由
func InitOrderRoutes(router *gin.Engine) {
	orderController := controllers.NewOrderController()

	orderGroup := router.Group("/api/orders")
	{
		orderGroup.GET("", orderController.List)
		orderGroup.GET("/:id", orderController.Get)
		orderGroup.PUT("/:id", orderController.UpdateMetadata)
		orderGroup.POST("/batch", orderController.Batch)
		orderGroup.POST("/search-by-products", orderController.SearchByProducts)
	}
}

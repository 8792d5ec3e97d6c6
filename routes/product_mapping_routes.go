package routes

import (
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitProductMappingRoutes 初始化商品名稱對應相關路由
func InitProductMappingRoutes(router *gin.Engine) {
	mappingController := controllers.NewProductMappingController()

	mappingGroup := router.Group("/api/product-mappings")
	{
		mappingGroup.GET("", mappingController.List)
		mappingGroup.PUT("/:id", mappingController.Update)
		mappingGroup.POST("/sync", mappingController.Sync)
	}
}

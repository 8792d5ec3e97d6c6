package routes

import (
	"shop_console/config"
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitRoutes 初始化路由配置
func InitRoutes(router *gin.Engine, appConfig *config.AppConfig) {
	// 管理者登入權杖路由
	tokenController := controllers.NewTokenController(appConfig)
	router.POST("/api/token/obtain", tokenController.Obtain)

	// 初始化待辦清單相關路由
	InitChecklistRoutes(router)

	// 初始化官網訂單相關路由
	InitOrderRoutes(router)

	// 初始化揀貨表相關路由
	InitPickingRoutes(router)

	// 初始化賣貨便報表相關路由
	InitUploadRoutes(router)

	// 初始化商品名稱對應相關路由
	InitProductMappingRoutes(router)

	// 健康檢查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 404 路由
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "頁面不存在"})
	})

	// 405 路由
	router.NoMethod(func(c *gin.Context) {
		c.JSON(405, gin.H{"error": "請求方法不允許"})
	})
}

package routes

import (
	"shop_console/controllers"

	"github.com/gin-gonic/gin"
)

// InitUploadRoutes 初始化賣貨便報表相關路由
func InitUploadRoutes(router *gin.Engine) {
	uploadController := controllers.NewUploadController()

	uploadGroup := router.Group("/orders")
	{
		uploadGroup.POST("/upload", uploadController.Upload)
		uploadGroup.POST("/upload-shipping", uploadController.UploadShipping)
		uploadGroup.GET("/uploaded", uploadController.ListUploaded)
		uploadGroup.GET("/uploaded/summary", uploadController.UploadedSummary)
		uploadGroup.GET("/uploaded-shipping/summary", uploadController.UploadedShippingSummary)
		uploadGroup.GET("/uploaded/last", uploadController.LastUpload)
		uploadGroup.DELETE("/uploaded", uploadController.ClearUploaded)
		uploadGroup.DELETE("/uploaded-shipping", uploadController.ClearUploadedShipping)
		uploadGroup.GET("/picking", uploadController.SellPicking)
	}
}

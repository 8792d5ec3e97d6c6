package main

import (
	"log"
	"net/http"

	"shop_console/config"
	"shop_console/db"
	"shop_console/method"
	"shop_console/middleware"
	"shop_console/routes"

	"github.com/gin-gonic/gin"
)

// noCacheStatic 提供靜態頁面並停用快取，避免瀏覽器沿用舊版頁面
func noCacheStatic(router *gin.Engine) {
	static := router.Group("/", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	})
	static.StaticFile("/", "./static/index.html")
	static.StaticFile("/nav.html", "./static/nav.html")
	static.StaticFile("/orders.html", "./static/orders.html")
	static.StaticFile("/picking.html", "./static/picking.html")
	static.StaticFile("/sell.html", "./static/sell.html")
	static.StaticFile("/mappings.html", "./static/mappings.html")
	static.Static("/css", "./static/css")
	static.Static("/js", "./static/js")
}

func main() {
	// 載入設定
	appConfig := config.LoadConfig()

	// 初始化資料庫
	db.InitDB(appConfig)
	// 執行資料庫遷移，同步資料表結構
	db.RunMigrations()

	// 初始化 Redis 快取，連線失敗時自動降級為直接呼叫官網 API
	db.InitRedis(appConfig)

	// 在 goroutine 中啟動待辦提醒排程器
	if appConfig.ReminderEnabled() {
		log.Println("正在啟動待辦提醒排程器...")
		go method.StartReminderScheduler(appConfig)
	}

	// 建立 Gin 引擎
	router := gin.New()

	// 設定中介層
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.AccessTokenValidationMiddleware(appConfig))

	// 設定靜態頁面服務
	noCacheStatic(router)

	// 初始化路由
	routes.InitRoutes(router, appConfig)

	// 啟動伺服器
	log.Printf("Server starting on port %s\n", appConfig.Port)
	server := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

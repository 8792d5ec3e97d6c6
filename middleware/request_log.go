package middleware

import (
	"log"
	"time"

	"shop_console/utils"

	"github.com/gin-gonic/gin"
)

var accessLogger *utils.Logger

func init() {
	var err error
	accessLogger, err = utils.NewLogger("logs", "access.log")
	if err != nil {
		log.Printf("初始化存取日誌失敗，改用標準輸出: %v", err)
		accessLogger = nil
	}
}

// RequestLogMiddleware 請求日誌中介層，記錄方法、路徑、狀態碼與耗時
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		if accessLogger != nil {
			accessLogger.Access("%s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)
		} else {
			log.Printf("[ACCESS] %s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)
		}
	}
}

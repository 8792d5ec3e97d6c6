package middleware

import (
	"net/http"
	"strings"

	"shop_console/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// 不需驗證的路徑前綴
var exemptPaths = []string{
	"/api/token/obtain",
	"/api/health",
	"/css/",
	"/js/",
	"/nav.html",
}

func isExemptPath(path string) bool {
	// 頁面本身不驗證，驗證只擋 API 與上傳
	if path == "/" || strings.HasSuffix(path, ".html") {
		return true
	}
	for _, exempt := range exemptPaths {
		if strings.HasPrefix(path, exempt) {
			return true
		}
	}
	return false
}

// AccessTokenValidationMiddleware token 驗證中介層
// 未設定 JWT_SECRET 與 ADMIN_PASSWORD_HASH 時直接放行
func AccessTokenValidationMiddleware(appConfig *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appConfig.AuthEnabled() || isExemptPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		var tokenString string

		// 先從 Authorization 標頭取得 token
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			authParts := strings.SplitN(authHeader, " ", 2)
			if len(authParts) == 2 && authParts[0] == "Bearer" {
				tokenString = authParts[1]
			}
		}

		// 標頭沒有時改從 access_token 參數取得
		if tokenString == "" {
			tokenString = c.Query("access_token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少 token，請在 Authorization 標頭或 access_token 參數提供"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(appConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token 無效或已過期"})
			c.Abort()
			return
		}

		c.Next()
	}
}

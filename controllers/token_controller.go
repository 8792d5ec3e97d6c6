package controllers

import (
	"net/http"
	"time"

	"shop_console/config"
	"shop_console/service/msg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// TokenController 管理者登入權杖控制器
type TokenController struct {
	appConfig *config.AppConfig
}

// NewTokenController 建立權杖控制器實例
func NewTokenController(appConfig *config.AppConfig) *TokenController {
	return &TokenController{appConfig: appConfig}
}

// TokenObtainRequest 取得權杖的請求內容
type TokenObtainRequest struct {
	Password string `json:"password" binding:"required"`
}

// Obtain 驗證管理者密碼並簽發存取權杖，權杖效期 12 小時
func (tc *TokenController) Obtain(c *gin.Context) {
	if !tc.appConfig.AuthEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "未啟用登入功能"})
		return
	}

	var req TokenObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg.BindingErrorMessage(err)})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tc.appConfig.AdminPasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "密碼錯誤"})
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(tc.appConfig.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "簽發權杖失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"expires_at":   claims.ExpiresAt.Format(time.RFC3339),
	})
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig 應用程式設定
type AppConfig struct {
	Port string

	// 資料庫設定
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis 設定
	RedisAddr     string
	RedisPassword string

	// 官網（WooCommerce）API 設定
	WooBaseURL   string
	WooAPIKey    string
	WooAPISecret string

	// 管理者驗證設定，兩者皆有值時才啟用 token 驗證
	JWTSecret         string
	AdminPasswordHash string

	// 提醒簡訊設定，三者皆有值時才啟用提醒排程
	SMSAccessKeyID     string
	SMSAccessKeySecret string
	ReminderPhone      string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// LoadConfig 載入應用程式設定，.env 檔存在時先載入
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err == nil {
		log.Println("已載入 .env 設定檔")
	}

	return &AppConfig{
		Port:               getEnv("PORT", "8080"),
		DBHost:             getEnv("POSTGRES_HOST", "postgres"),
		DBPort:             getEnv("POSTGRES_PORT", "5432"),
		DBUser:             getEnv("POSTGRES_USER", "postgres"),
		DBPassword:         getEnv("POSTGRES_PASSWORD", ""),
		DBName:             getEnv("POSTGRES_DB", "shop_console"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		WooBaseURL:         getEnv("WOO_BASE_URL", ""),
		WooAPIKey:          getEnv("WOO_API_KEY", ""),
		WooAPISecret:       getEnv("WOO_API_SECRET", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		SMSAccessKeyID:     getEnv("SMS_ACCESS_KEY_ID", ""),
		SMSAccessKeySecret: getEnv("SMS_ACCESS_KEY_SECRET", ""),
		ReminderPhone:      getEnv("REMINDER_PHONE", ""),
	}
}

// AuthEnabled 是否啟用 token 驗證
func (c *AppConfig) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

// ReminderEnabled 是否啟用提醒簡訊排程
func (c *AppConfig) ReminderEnabled() bool {
	return c.SMSAccessKeyID != "" && c.SMSAccessKeySecret != "" && c.ReminderPhone != ""
}

package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"shop_console/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 全域資料庫連線
var DB *gorm.DB

// RDB 全域 Redis 連線，未設定 REDIS_ADDR 時為 nil
var RDB *redis.Client

// InitDB 初始化資料庫連線，最多重試 5 次
func InitDB(appConfig *config.AppConfig) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		appConfig.DBHost,
		appConfig.DBUser,
		appConfig.DBPassword,
		appConfig.DBName,
		appConfig.DBPort,
	)

	var err error
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("資料庫連線失敗（第 %d 次）: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}

	if err != nil {
		log.Fatalf("多次重試後仍無法連線資料庫: %v", err)
	}
	log.Println("資料庫連線成功")
}

// InitRedis 初始化 Redis 連線，僅作為官網訂單快取，連不上時只記錄警告
func InitRedis(appConfig *config.AppConfig) {
	if appConfig.RedisAddr == "" {
		log.Println("未設定 REDIS_ADDR，停用官網訂單快取")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     appConfig.RedisAddr,
		Password: appConfig.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Printf("Redis 連線失敗，停用官網訂單快取: %v", err)
		RDB = nil
		return
	}
	log.Println("Redis 連線成功")
}

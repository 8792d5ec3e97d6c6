package db

import (
	"fmt"
	"log"

	"shop_console/models"
)

// RunMigrations 執行資料庫遷移，同步所有模型的資料表結構
func RunMigrations() {
	log.Println("開始執行資料庫遷移...")

	modelsToMigrate := []interface{}{
		&models.ChecklistItem{},
		&models.OrderMetadata{},
		&models.UploadedOrder{},
		&models.UploadedShippingOrder{},
		&models.UploadBatch{},
		&models.ProductMapping{},
	}

	for _, model := range modelsToMigrate {
		modelName := fmt.Sprintf("%T", model)
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("同步 %v 模型結構失敗: %v", modelName, err)
		} else {
			log.Printf("%v 模型結構同步成功", modelName)
		}
	}

	log.Println("資料庫遷移完成！")
}

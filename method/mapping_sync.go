package method

import (
	"fmt"
	"log"
	"strings"

	"shop_console/db"
	"shop_console/models"

	"gorm.io/gorm"
)

// SyncProductMappings 從兩個通路的目前訂單收集商品名稱，為新名稱建立對應
// 已存在的對應不會被覆寫，使用者的修改因此得以保留
func SyncProductMappings() (int, error) {
	created := 0

	wooOrders, err := FetchProcessingOrders()
	if err != nil {
		// 官網抓不到時仍同步賣貨便那側
		log.Printf("同步商品名稱時無法取得官網訂單: %v", err)
	} else {
		for _, order := range wooOrders {
			for _, item := range order.LineItems {
				n, err := ensureMapping(models.SourceWooCommerce, item.Name)
				if err != nil {
					return created, err
				}
				created += n
			}
		}
	}

	var uploadedNames []string
	if err := db.DB.Model(&models.UploadedOrder{}).Distinct("product_name").Pluck("product_name", &uploadedNames).Error; err != nil {
		return created, fmt.Errorf("查詢賣貨便商品名稱失敗: %w", err)
	}
	var shippingNames []string
	if err := db.DB.Model(&models.UploadedShippingOrder{}).Distinct("product_name").Pluck("product_name", &shippingNames).Error; err != nil {
		return created, fmt.Errorf("查詢賣貨便出貨商品名稱失敗: %w", err)
	}

	for _, name := range append(uploadedNames, shippingNames...) {
		n, err := ensureMapping(models.SourceSell, name)
		if err != nil {
			return created, err
		}
		created += n
	}

	log.Printf("商品名稱同步完成，新增 %d 筆對應", created)
	return created, nil
}

func ensureMapping(source, originalName string) (int, error) {
	name := strings.TrimSpace(originalName)
	if name == "" {
		return 0, nil
	}

	var existing models.ProductMapping
	err := db.DB.Where("source = ? AND original_name = ?", source, name).First(&existing).Error
	if err == nil {
		return 0, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("查詢商品對應失敗: %w", err)
	}

	mapping := models.ProductMapping{
		Source:       source,
		OriginalName: name,
		MappedName:   name,
	}
	if err := db.DB.Create(&mapping).Error; err != nil {
		return 0, fmt.Errorf("建立商品對應失敗: %w", err)
	}
	return 1, nil
}

// MappedName 查出商品的統一名稱，沒有對應時回傳原名
func MappedName(mappings []models.ProductMapping, source, originalName string) string {
	for _, mapping := range mappings {
		if mapping.Source == source && mapping.OriginalName == originalName {
			return mapping.MappedName
		}
	}
	return originalName
}

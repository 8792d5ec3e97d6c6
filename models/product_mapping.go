package models

import "time"

// 商品來源通路
const (
	SourceWooCommerce = "woocommerce"
	SourceSell        = "sell"
)

// ProductMapping 通路原始商品名稱與統一名稱的對應
// MappedName 不可為空，重置即改回 OriginalName
type ProductMapping struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Source       string    `json:"source" gorm:"index:idx_product_mappings_source_name,unique"`
	OriginalName string    `json:"original_name" gorm:"index:idx_product_mappings_source_name,unique"`
	MappedName   string    `json:"mapped_name"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

package models

import "time"

// UploadedOrder 賣貨便報表匯入的訂單列，一列一個商品項目
type UploadedOrder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderNo       string    `json:"order_no"`
	OrderedAt     time.Time `json:"ordered_at"`
	ReceiverName  string    `json:"receiver_name"`
	Address       string    `json:"address"`
	ProductName   string    `json:"product_name"`
	UnitPrice     float64   `json:"unit_price"`
	DiscountPrice float64   `json:"discount_price"`
	Qty           int       `json:"qty"`
	Note          string    `json:"note"`
}

// UploadedShippingOrder 賣貨便出貨報表匯入的訂單列，與 UploadedOrder 分表儲存
type UploadedShippingOrder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderNo       string    `json:"order_no"`
	OrderedAt     time.Time `json:"ordered_at"`
	ReceiverName  string    `json:"receiver_name"`
	Address       string    `json:"address"`
	ProductName   string    `json:"product_name"`
	UnitPrice     float64   `json:"unit_price"`
	DiscountPrice float64   `json:"discount_price"`
	Qty           int       `json:"qty"`
	Note          string    `json:"note"`
}

// UploadBatch 每次報表上傳的紀錄，用於查詢最後上傳時間
type UploadBatch struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadedOrderItem 訂單彙總中的單一商品項目
type UploadedOrderItem struct {
	ProductName   string  `json:"product_name"`
	UnitPrice     float64 `json:"unit_price"`
	DiscountPrice float64 `json:"discount_price"`
	Qty           int     `json:"qty"`
	Note          string  `json:"note"`
}

// UploadedOrderSummary 以訂單編號彙總後的賣貨便訂單
type UploadedOrderSummary struct {
	OrderNo      string              `json:"order_no"`
	OrderedAt    time.Time           `json:"ordered_at"`
	ReceiverName string              `json:"receiver_name"`
	Address      string              `json:"address"`
	TotalQty     int                 `json:"total_qty"`
	TotalAmount  float64             `json:"total_amount"`
	Items        []UploadedOrderItem `json:"items"`
}

package models

// WooOrder 官網（WooCommerce）訂單，由通路 API 取得
// OrderMetadata 由本系統的資料庫補上，不寫回通路
type WooOrder struct {
	ID                 int            `json:"id"`
	DateCreated        string         `json:"date_created"`
	Shipping           ShippingInfo   `json:"shipping"`
	Billing            BillingInfo    `json:"billing"`
	Total              string         `json:"total"`
	LineItems          []LineItem     `json:"line_items"`
	MetaData           []MetaData     `json:"meta_data"`
	CustomerNote       string         `json:"customer_note"`
	ShippingLines      []ShippingLine `json:"shipping_lines"`
	PaymentMethodTitle string         `json:"payment_method_title"`
	CvsStoreName       string         `json:"cvs_store_name,omitempty"`
	PickupNumber       string         `json:"pickup_number,omitempty"`
	OrderMetadata      OrderMetadata  `json:"order_metadata" gorm:"-"`
}

// BillingInfo 訂購人聯絡資訊
type BillingInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ShippingInfo 收件人資訊
type ShippingInfo struct {
	FirstName string `json:"first_name"`
}

// LineItem 訂單商品項目
type LineItem struct {
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
	Total    string     `json:"total"`
	MetaData []MetaData `json:"meta_data"`
}

// MetaData 通路附加欄位，值可能是字串或巢狀物件
type MetaData struct {
	Key          string `json:"key"`
	Value        any    `json:"value"`
	DisplayKey   string `json:"display_key"`
	DisplayValue string `json:"display_value"`
}

// ShippingLine 出貨方式
type ShippingLine struct {
	MethodTitle string `json:"method_title"`
}

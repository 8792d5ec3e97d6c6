package models

// PickingListItem 官網揀貨表的一列，彙總自目前訂單集合，不落庫
type PickingListItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	OrderIDs []int  `json:"order_ids"`
}

// ProductPickingItem 賣貨便揀貨表的一列
type ProductPickingItem struct {
	ProductName string   `json:"product_name"`
	TotalQty    int      `json:"total_qty"`
	OrderNos    []string `json:"order_nos"`
}

// 合併揀貨表的來源標示
const (
	SourcesWoo  = "官網"
	SourcesSell = "賣貨便"
	SourcesBoth = "官網 + 賣貨便"
)

// CombinedPickingItem 跨通路合併揀貨表的一列，商品名稱為對應後的統一名稱
type CombinedPickingItem struct {
	ProductName    string   `json:"product_name"`
	TotalQty       int      `json:"total_qty"`
	WooCommerceQty int      `json:"woocommerce_qty"`
	SellQty        int      `json:"sell_qty"`
	Sources        string   `json:"sources"`
	OrderIDs       []int    `json:"order_ids"`
	OrderNos       []string `json:"order_nos"`
}

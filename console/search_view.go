package console

import (
	"shop_console/controllers"
	"shop_console/models"
)

// SearchView 跨通路商品搜尋頁
type SearchView struct {
	client   *Client
	notifier *Notifier

	// 搜尋條件
	ProductNames         []string
	Mode                 string
	ExcludedProductNames []string

	wooOrders  []models.WooOrder
	sellOrders []models.UploadedOrderSummary
	searched   bool
}

// NewSearchView 建立商品搜尋頁
func NewSearchView(client *Client, notifier *Notifier) *SearchView {
	return &SearchView{client: client, notifier: notifier, Mode: controllers.SearchModeAny}
}

// Search 送出搜尋，條件不足時不發出請求
func (v *SearchView) Search() error {
	if len(v.ProductNames) == 0 && len(v.ExcludedProductNames) == 0 {
		v.notifier.Push(NotifyError, "請至少選擇一個搜尋商品或排除商品")
		return ErrEmptySelection
	}

	result, err := v.client.SearchOrders(controllers.ProductSearchRequest{
		ProductNames:         v.ProductNames,
		Mode:                 v.Mode,
		ExcludedProductNames: v.ExcludedProductNames,
	})
	if err != nil {
		v.notifier.Push(NotifyError, "搜尋訂單失敗："+err.Error())
		return err
	}

	v.wooOrders = result.WooOrders
	v.sellOrders = result.SellOrders
	v.searched = true
	return nil
}

// WooOrders 官網符合條件的訂單，依成立時間由舊到新
func (v *SearchView) WooOrders() []models.WooOrder {
	return v.wooOrders
}

// SellOrders 賣貨便符合條件的訂單彙總
func (v *SearchView) SellOrders() []models.UploadedOrderSummary {
	return v.sellOrders
}

// Searched 是否已執行過搜尋，用來區分「沒搜過」與「搜不到」
func (v *SearchView) Searched() bool {
	return v.searched
}

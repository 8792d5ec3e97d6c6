package console

import (
	"strings"

	"shop_console/models"
)

// PickingView 合併揀貨表頁
type PickingView struct {
	notifier *Notifier
	loader   *Loader[models.CombinedPickingItem]

	// FilterText 品名關鍵字篩選，空字串表示全部顯示
	FilterText string
}

// NewPickingView 建立揀貨表頁，載入失敗時保留上一次成功的資料
func NewPickingView(client *Client, notifier *Notifier) *PickingView {
	return &PickingView{
		notifier: notifier,
		loader:   NewLoader(client.CombinedPicking, KeepOnFailure),
	}
}

// Reload 重新載入合併揀貨表
func (v *PickingView) Reload() error {
	if !v.loader.Reload() {
		err := v.loader.LastError()
		v.notifier.Push(NotifyError, "載入揀貨表失敗："+err.Error())
		return err
	}
	return nil
}

// Visible 套用品名關鍵字後顯示的列，關鍵字不分大小寫
func (v *PickingView) Visible() []models.CombinedPickingItem {
	items := v.loader.Items()
	keyword := strings.ToLower(strings.TrimSpace(v.FilterText))
	if keyword == "" {
		return items
	}

	visible := make([]models.CombinedPickingItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ProductName), keyword) {
			visible = append(visible, item)
		}
	}
	return visible
}

// PickingTotals 揀貨表合計列
type PickingTotals struct {
	TotalQty       int
	WooCommerceQty int
	SellQty        int
	ProductCount   int
}

// CalculateTotals 計算合計列，只加總畫面上看得到的列
func (v *PickingView) CalculateTotals() PickingTotals {
	totals := PickingTotals{}
	for _, item := range v.Visible() {
		totals.TotalQty += item.TotalQty
		totals.WooCommerceQty += item.WooCommerceQty
		totals.SellQty += item.SellQty
		totals.ProductCount++
	}
	return totals
}

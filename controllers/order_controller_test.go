package controllers

import (
	"testing"
	"time"

	"shop_console/models"
)

func testOrder(id int, dateCreated string, tags []string, remark, customerNote string) models.WooOrder {
	return models.WooOrder{
		ID:           id,
		DateCreated:  dateCreated,
		CustomerNote: customerNote,
		OrderMetadata: models.OrderMetadata{
			OrderID: id,
			Remark:  remark,
			Tags:    tags,
		},
	}
}

func TestMatchOrderTags(t *testing.T) {
	order := testOrder(1, "2026-01-10T12:00:00", []string{"急件", "冷藏"}, "", "")

	// 任一標籤符合即通過
	if !MatchOrder(order, OrderFilter{Tags: []string{"冷藏", "預購"}}) {
		t.Error("帶有其中一個標籤的訂單應通過篩選")
	}
	if MatchOrder(order, OrderFilter{Tags: []string{"預購"}}) {
		t.Error("沒有任何指定標籤的訂單不應通過篩選")
	}
}

func TestMatchOrderPresenceFilters(t *testing.T) {
	withRemark := testOrder(1, "2026-01-10T12:00:00", nil, "先出貨", "")
	withoutRemark := testOrder(2, "2026-01-10T12:00:00", nil, "", "請放管理室")

	if !MatchOrder(withRemark, OrderFilter{HasRemark: true}) {
		t.Error("有備註的訂單應通過 has_remark 篩選")
	}
	if MatchOrder(withoutRemark, OrderFilter{HasRemark: true}) {
		t.Error("沒有備註的訂單不應通過 has_remark 篩選")
	}
	if !MatchOrder(withoutRemark, OrderFilter{HasCustomerNote: true}) {
		t.Error("有客戶備註的訂單應通過 has_customer_note 篩選")
	}
}

func TestMatchOrderDateRange(t *testing.T) {
	order := testOrder(1, "2026-01-10T23:30:00", nil, "", "")
	jan10 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	// 結束日含當日整天
	if !MatchOrder(order, OrderFilter{StartDate: jan10, EndDate: jan10}) {
		t.Error("成立於結束日深夜的訂單仍應通過篩選")
	}
	if MatchOrder(order, OrderFilter{EndDate: jan10.AddDate(0, 0, -1)}) {
		t.Error("成立於結束日之後的訂單不應通過篩選")
	}
	if MatchOrder(order, OrderFilter{StartDate: jan10.AddDate(0, 0, 1)}) {
		t.Error("成立於開始日之前的訂單不應通過篩選")
	}
}

func TestFilterOrders(t *testing.T) {
	orders := []models.WooOrder{
		testOrder(1, "2026-01-10T12:00:00", []string{"急件"}, "", ""),
		testOrder(2, "2026-01-10T12:00:00", nil, "", ""),
	}

	filtered := FilterOrders(orders, OrderFilter{Tags: []string{"急件"}})
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("篩選結果 = %v, 預期只剩訂單 1", filtered)
	}
}

func wooOrderWithItems(id int, names ...string) models.WooOrder {
	items := make([]models.LineItem, len(names))
	for i, name := range names {
		items[i] = models.LineItem{Name: name, Quantity: 1}
	}
	return models.WooOrder{ID: id, LineItems: items}
}

func TestSearchWooOrdersAnyMode(t *testing.T) {
	orders := []models.WooOrder{
		wooOrderWithItems(1, "白色上衣", "黑色長褲"),
		wooOrderWithItems(2, "紅色外套"),
	}

	matched := SearchWooOrders(orders, nil, ProductSearchRequest{
		ProductNames: []string{"白色上衣"},
		Mode:         SearchModeAny,
	})
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Errorf("any 模式結果 = %v, 預期只有訂單 1", matched)
	}
}

func TestSearchWooOrdersAllMode(t *testing.T) {
	orders := []models.WooOrder{
		wooOrderWithItems(1, "白色上衣", "黑色長褲"),
		wooOrderWithItems(2, "白色上衣"),
	}

	matched := SearchWooOrders(orders, nil, ProductSearchRequest{
		ProductNames: []string{"白色上衣", "黑色長褲"},
		Mode:         SearchModeAll,
	})
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Errorf("all 模式結果 = %v, 預期只有訂單 1", matched)
	}
}

func TestSearchWooOrdersExcludes(t *testing.T) {
	orders := []models.WooOrder{
		wooOrderWithItems(1, "白色上衣", "黑色長褲"),
		wooOrderWithItems(2, "白色上衣"),
	}

	// 排除名單優先，含排除商品的訂單一律不符合
	matched := SearchWooOrders(orders, nil, ProductSearchRequest{
		ProductNames:         []string{"白色上衣"},
		Mode:                 SearchModeAny,
		ExcludedProductNames: []string{"黑色長褲"},
	})
	if len(matched) != 1 || matched[0].ID != 2 {
		t.Errorf("排除後結果 = %v, 預期只有訂單 2", matched)
	}

	// excludes 模式允許不選搜尋商品，只靠排除名單過濾
	matched = SearchWooOrders(orders, nil, ProductSearchRequest{
		Mode:                 SearchModeExcludes,
		ExcludedProductNames: []string{"黑色長褲"},
	})
	if len(matched) != 1 || matched[0].ID != 2 {
		t.Errorf("excludes 模式結果 = %v, 預期只有訂單 2", matched)
	}
}

func TestSearchWooOrdersWithMappings(t *testing.T) {
	orders := []models.WooOrder{
		wooOrderWithItems(1, "白上衣（官網版）"),
	}
	mappings := []models.ProductMapping{
		{Source: models.SourceWooCommerce, OriginalName: "白上衣（官網版）", MappedName: "白色上衣"},
	}

	// 搜尋用統一名稱，對應表先轉換再比對
	matched := SearchWooOrders(orders, mappings, ProductSearchRequest{
		ProductNames: []string{"白色上衣"},
		Mode:         SearchModeAny,
	})
	if len(matched) != 1 {
		t.Errorf("經對應轉換後應搜得到訂單, 結果 = %v", matched)
	}
}

func TestSearchSellOrders(t *testing.T) {
	summaries := []models.UploadedOrderSummary{
		{OrderNo: "A001", Items: []models.UploadedOrderItem{{ProductName: "白色上衣"}}},
		{OrderNo: "A002", Items: []models.UploadedOrderItem{{ProductName: "紅色外套"}}},
	}

	matched := SearchSellOrders(summaries, nil, ProductSearchRequest{
		ProductNames: []string{"白色上衣"},
		Mode:         SearchModeAny,
	})
	if len(matched) != 1 || matched[0].OrderNo != "A001" {
		t.Errorf("賣貨便搜尋結果 = %v, 預期只有 A001", matched)
	}
}

package console

import (
	"sort"
	"strings"

	"shop_console/controllers"
	"shop_console/models"
)

// OrderQuery 訂單列表的查詢條件，日期為 YYYY-MM-DD
type OrderQuery struct {
	Tags            []string
	HasRemark       bool
	HasCustomerNote bool
	StartDate       string
	EndDate         string
}

// OrdersView 訂單列表頁
type OrdersView struct {
	client   *Client
	notifier *Notifier

	orders []models.WooOrder

	// availableTags 從未篩選的完整訂單集合蒐集
	// 篩掉某個標籤的訂單後，下拉選單仍要能選到那個標籤
	availableTags []string

	// Filters 由伺服器套用，改變時要重新載入
	// HideCompleted 只影響畫面，切換時不重新抓資料
	Filters       OrderQuery
	HideCompleted bool
}

// NewOrdersView 建立訂單列表頁
func NewOrdersView(client *Client, notifier *Notifier) *OrdersView {
	return &OrdersView{client: client, notifier: notifier}
}

// Reload 依目前篩選條件重新載入訂單
// 標籤選單只在沒有任何篩選時更新，避免選項跟著篩選結果縮水
func (v *OrdersView) Reload() error {
	orders, err := v.client.ListOrders(v.Filters)
	if err != nil {
		v.notifier.Push(NotifyError, "載入訂單失敗："+err.Error())
		return err
	}

	v.orders = orders
	if !v.hasServerFilters() {
		v.captureTags()
	}
	return nil
}

// SetFilters 更新伺服器端篩選條件並立即重新載入
func (v *OrdersView) SetFilters(query OrderQuery) error {
	v.Filters = query
	return v.Reload()
}

func (v *OrdersView) hasServerFilters() bool {
	return len(v.Filters.Tags) > 0 ||
		v.Filters.HasRemark ||
		v.Filters.HasCustomerNote ||
		v.Filters.StartDate != "" ||
		v.Filters.EndDate != ""
}

// captureTags 從完整訂單集合蒐集標籤，去重後排序
func (v *OrdersView) captureTags() {
	seen := map[string]struct{}{}
	for _, order := range v.orders {
		for _, tag := range order.OrderMetadata.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	v.availableTags = tags
}

// AvailableTags 標籤下拉選單的選項
func (v *OrdersView) AvailableTags() []string {
	return v.availableTags
}

// Orders 目前載入的全部訂單
func (v *OrdersView) Orders() []models.WooOrder {
	return v.orders
}

// Visible 畫面上顯示的訂單
// 其餘篩選已由伺服器套用，這裡只處理隱藏已完成
func (v *OrdersView) Visible() []models.WooOrder {
	visible := make([]models.WooOrder, 0, len(v.orders))
	for _, order := range v.orders {
		if v.HideCompleted && order.OrderMetadata.IsCompleted {
			continue
		}
		visible = append(visible, order)
	}
	return visible
}

// findOrder 依編號找目前載入的訂單
func (v *OrdersView) findOrder(orderID int) (int, bool) {
	for i := range v.orders {
		if v.orders[i].ID == orderID {
			return i, true
		}
	}
	return 0, false
}

// saveMetadata 把訂單目前的附加資料整組送回伺服器
// 失敗時保留畫面上的狀態不回滾，只提示錯誤讓使用者重試
func (v *OrdersView) saveMetadata(order *models.WooOrder) {
	request := controllers.MetadataUpdateRequest{
		Remark:      order.OrderMetadata.Remark,
		Tags:        order.OrderMetadata.Tags,
		IsCompleted: order.OrderMetadata.IsCompleted,
	}
	if _, err := v.client.UpdateOrderMetadata(order.ID, request); err != nil {
		v.notifier.Push(NotifyError, "儲存訂單附加資料失敗："+err.Error())
	}
}

// AddTag 為訂單加上標籤
// 空白與重複的標籤直接忽略，不會發出請求；標籤比對區分大小寫
func (v *OrdersView) AddTag(orderID int, tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}

	idx, ok := v.findOrder(orderID)
	if !ok {
		return
	}

	order := &v.orders[idx]
	for _, existing := range order.OrderMetadata.Tags {
		if existing == tag {
			return
		}
	}

	order.OrderMetadata.Tags = append(order.OrderMetadata.Tags, tag)
	v.captureTags()
	v.saveMetadata(order)
}

// RemoveTag 移除訂單的標籤
func (v *OrdersView) RemoveTag(orderID int, tag string) {
	idx, ok := v.findOrder(orderID)
	if !ok {
		return
	}

	order := &v.orders[idx]
	remaining := make([]string, 0, len(order.OrderMetadata.Tags))
	removed := false
	for _, existing := range order.OrderMetadata.Tags {
		if existing == tag {
			removed = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !removed {
		return
	}

	order.OrderMetadata.Tags = remaining
	v.captureTags()
	v.saveMetadata(order)
}

// SetRemark 更新訂單備註
func (v *OrdersView) SetRemark(orderID int, remark string) {
	idx, ok := v.findOrder(orderID)
	if !ok {
		return
	}

	order := &v.orders[idx]
	order.OrderMetadata.Remark = remark
	v.saveMetadata(order)
}

// SetCompleted 標記訂單完成狀態
func (v *OrdersView) SetCompleted(orderID int, completed bool) {
	idx, ok := v.findOrder(orderID)
	if !ok {
		return
	}

	order := &v.orders[idx]
	if order.OrderMetadata.IsCompleted == completed {
		return
	}

	order.OrderMetadata.IsCompleted = completed
	v.saveMetadata(order)
}

// ToggleHideCompleted 切換是否隱藏已完成訂單，只影響畫面
func (v *OrdersView) ToggleHideCompleted() {
	v.HideCompleted = !v.HideCompleted
}

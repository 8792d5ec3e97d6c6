package console

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"shop_console/models"
)

// SelectionSet 訂單勾選狀態
type SelectionSet struct {
	selected map[int]struct{}
}

// NewSelectionSet 建立空的勾選集合
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{selected: map[int]struct{}{}}
}

// Toggle 切換單筆訂單的勾選狀態
func (s *SelectionSet) Toggle(orderID int) {
	if _, ok := s.selected[orderID]; ok {
		delete(s.selected, orderID)
		return
	}
	s.selected[orderID] = struct{}{}
}

// Contains 該訂單是否已勾選
func (s *SelectionSet) Contains(orderID int) bool {
	_, ok := s.selected[orderID]
	return ok
}

// SelectAll 勾選整批訂單
func (s *SelectionSet) SelectAll(orderIDs []int) {
	for _, id := range orderIDs {
		s.selected[id] = struct{}{}
	}
}

// Clear 清空勾選
func (s *SelectionSet) Clear() {
	s.selected = map[int]struct{}{}
}

// IDs 取得已勾選的訂單編號，依編號排序
func (s *SelectionSet) IDs() []int {
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// 全選核取方塊的三種狀態
const (
	SelectAllNone = "none"
	SelectAllSome = "some"
	SelectAllAll  = "all"
)

// SelectAllState 以目前畫面上的訂單計算全選核取方塊狀態
func (s *SelectionSet) SelectAllState(visibleIDs []int) string {
	if len(visibleIDs) == 0 {
		return SelectAllNone
	}

	count := 0
	for _, id := range visibleIDs {
		if s.Contains(id) {
			count++
		}
	}

	switch count {
	case 0:
		return SelectAllNone
	case len(visibleIDs):
		return SelectAllAll
	default:
		return SelectAllSome
	}
}

// OrderFetcher 匯出時取得訂單完整內容的能力
type OrderFetcher interface {
	BatchOrders(orderIDs []int) ([]models.WooOrder, error)
	GetOrder(orderID int) (models.WooOrder, error)
}

// exportBatchSize 單次批次查詢的訂單數上限
const exportBatchSize = 50

// exportBatchDelay 批次之間的間隔，避免連續打爆伺服器
const exportBatchDelay = 200 * time.Millisecond

// ErrEmptySelection 未勾選任何訂單
var ErrEmptySelection = errors.New("請先勾選要匯出的訂單")

// ErrWindowClosed 資料備妥前列印視窗已被關閉
var ErrWindowClosed = errors.New("列印視窗已關閉，匯出中止")

// ErrNoExportData 勾選的訂單一筆都取不回來
var ErrNoExportData = errors.New("取不到任何訂單資料，匯出中止")

// Exporter 把勾選的訂單送進列印視窗
type Exporter struct {
	fetcher  OrderFetcher
	opener   WindowOpener
	notifier *Notifier

	// summaries 列表頁已載入的訂單，批次與逐筆查詢都失敗時的備援
	summaries map[int]models.WooOrder

	sleep func(time.Duration)
}

// NewExporter 建立匯出器
func NewExporter(fetcher OrderFetcher, opener WindowOpener, notifier *Notifier) *Exporter {
	return &Exporter{
		fetcher:   fetcher,
		opener:    opener,
		notifier:  notifier,
		summaries: map[int]models.WooOrder{},
		sleep:     time.Sleep,
	}
}

// CacheSummaries 記下列表頁目前載入的訂單
func (e *Exporter) CacheSummaries(orders []models.WooOrder) {
	for _, order := range orders {
		e.summaries[order.ID] = order
	}
}

// collectOrders 以批次取得訂單完整內容
// 批次失敗時退回逐筆查詢，逐筆也失敗時改用列表頁的快取，仍沒有就略過該筆
func (e *Exporter) collectOrders(orderIDs []int) []models.WooOrder {
	collected := make([]models.WooOrder, 0, len(orderIDs))

	for start := 0; start < len(orderIDs); start += exportBatchSize {
		if start > 0 {
			e.sleep(exportBatchDelay)
		}

		end := start + exportBatchSize
		if end > len(orderIDs) {
			end = len(orderIDs)
		}
		batch := orderIDs[start:end]

		orders, err := e.fetcher.BatchOrders(batch)
		if err == nil {
			collected = append(collected, orders...)
			continue
		}

		for _, id := range batch {
			order, err := e.fetcher.GetOrder(id)
			if err == nil {
				collected = append(collected, order)
				continue
			}
			if cached, ok := e.summaries[id]; ok {
				collected = append(collected, cached)
			}
		}
	}

	return collected
}

// sortOrdersByCreated 依訂單成立時間由舊到新排序
func sortOrdersByCreated(orders []models.WooOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].DateCreated < orders[j].DateCreated
	})
}

// Export 開啟列印視窗並送出勾選的訂單
// 視窗必須在進入這裡的使用者操作中開啟，否則會被瀏覽器擋下
func (e *Exporter) Export(messageType string, selection *SelectionSet, printURL string) error {
	orderIDs := selection.IDs()
	if len(orderIDs) == 0 {
		e.notifier.Push(NotifyError, "請先勾選要匯出的訂單")
		return ErrEmptySelection
	}

	window, err := e.opener.Open(printURL)
	if err != nil {
		e.notifier.Push(NotifyError, "無法開啟列印視窗")
		return fmt.Errorf("開啟列印視窗失敗: %w", err)
	}

	orders := e.collectOrders(orderIDs)
	sortOrdersByCreated(orders)

	// 一筆都拿不到就不送訊息，空陣列會讓列印頁卡在等資料
	if len(orders) == 0 {
		window.Close()
		e.notifier.Push(NotifyError, "取不到任何訂單資料，匯出中止")
		return ErrNoExportData
	}

	if window.Closed() {
		e.notifier.Push(NotifyError, "列印視窗已關閉，匯出中止")
		return ErrWindowClosed
	}

	message := WindowMessage{Type: messageType, Orders: orders}
	if err := window.Post(message); err != nil {
		e.notifier.Push(NotifyError, "傳送訂單資料失敗")
		return err
	}

	return nil
}

package console

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"shop_console/models"
)

type fakeFetcher struct {
	batchCalls   [][]int
	batchFails   bool
	singleCalls  []int
	singleFailID map[int]bool
}

func (f *fakeFetcher) BatchOrders(orderIDs []int) ([]models.WooOrder, error) {
	f.batchCalls = append(f.batchCalls, orderIDs)
	if f.batchFails {
		return nil, errors.New("batch failed")
	}
	orders := make([]models.WooOrder, len(orderIDs))
	for i, id := range orderIDs {
		orders[i] = models.WooOrder{ID: id, DateCreated: fmt.Sprintf("2026-01-%02dT10:00:00", (id%27)+1)}
	}
	return orders, nil
}

func (f *fakeFetcher) GetOrder(orderID int) (models.WooOrder, error) {
	f.singleCalls = append(f.singleCalls, orderID)
	if f.singleFailID[orderID] {
		return models.WooOrder{}, errors.New("single failed")
	}
	return models.WooOrder{ID: orderID, DateCreated: "2026-01-05T10:00:00"}, nil
}

type fakeWindow struct {
	closed   bool
	messages []WindowMessage
}

func (w *fakeWindow) Post(message WindowMessage) error {
	w.messages = append(w.messages, message)
	return nil
}

func (w *fakeWindow) Closed() bool { return w.closed }

func (w *fakeWindow) Close() { w.closed = true }

type fakeOpener struct {
	window    *fakeWindow
	openCount int
}

func (o *fakeOpener) Open(url string) (PrintWindow, error) {
	o.openCount++
	return o.window, nil
}

func newTestExporter(fetcher *fakeFetcher, opener *fakeOpener) (*Exporter, *int) {
	exporter := NewExporter(fetcher, opener, NewNotifier())
	sleeps := 0
	exporter.sleep = func(time.Duration) { sleeps++ }
	return exporter, &sleeps
}

func selectionOf(ids ...int) *SelectionSet {
	selection := NewSelectionSet()
	selection.SelectAll(ids)
	return selection
}

func TestExportEmptySelection(t *testing.T) {
	opener := &fakeOpener{window: &fakeWindow{}}
	exporter, _ := newTestExporter(&fakeFetcher{}, opener)

	err := exporter.Export(MessageOrderListData, NewSelectionSet(), "/print.html")
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("未勾選時應回傳 ErrEmptySelection, 實際 %v", err)
	}
	// 沒勾選任何訂單就不該開視窗
	if opener.openCount != 0 {
		t.Errorf("開視窗次數 = %d, 預期 0", opener.openCount)
	}
}

func TestExportBatchesOfFifty(t *testing.T) {
	fetcher := &fakeFetcher{}
	window := &fakeWindow{}
	exporter, sleeps := newTestExporter(fetcher, &fakeOpener{window: window})

	ids := make([]int, 120)
	for i := range ids {
		ids[i] = i + 1
	}

	if err := exporter.Export(MessageOrderListData, selectionOf(ids...), "/print.html"); err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}

	// 120 筆切成 50、50、20 三個批次
	if len(fetcher.batchCalls) != 3 {
		t.Fatalf("批次呼叫數 = %d, 預期 3", len(fetcher.batchCalls))
	}
	if len(fetcher.batchCalls[0]) != 50 || len(fetcher.batchCalls[2]) != 20 {
		t.Errorf("批次大小 = %d/%d/%d, 預期 50/50/20",
			len(fetcher.batchCalls[0]), len(fetcher.batchCalls[1]), len(fetcher.batchCalls[2]))
	}
	// 批次之間各停一次
	if *sleeps != 2 {
		t.Errorf("批次間延遲次數 = %d, 預期 2", *sleeps)
	}
	// 只送一則訊息，內含全部訂單
	if len(window.messages) != 1 {
		t.Fatalf("訊息數 = %d, 預期 1", len(window.messages))
	}
	if window.messages[0].Type != MessageOrderListData {
		t.Errorf("訊息類型 = %s, 預期 %s", window.messages[0].Type, MessageOrderListData)
	}
	orders, ok := window.messages[0].Orders.([]models.WooOrder)
	if !ok {
		t.Fatalf("訊息內容型別錯誤: %T", window.messages[0].Orders)
	}
	if len(orders) != 120 {
		t.Errorf("訊息訂單數 = %d, 預期 120", len(orders))
	}
	// 訂單依成立時間由舊到新
	for i := 1; i < len(orders); i++ {
		if orders[i-1].DateCreated > orders[i].DateCreated {
			t.Fatalf("訂單未依成立時間排序: %s 在 %s 之前", orders[i-1].DateCreated, orders[i].DateCreated)
		}
	}
}

func TestExportBatchFailureFallsBackToSingles(t *testing.T) {
	fetcher := &fakeFetcher{batchFails: true}
	window := &fakeWindow{}
	exporter, _ := newTestExporter(fetcher, &fakeOpener{window: window})

	ids := make([]int, 50)
	for i := range ids {
		ids[i] = i + 1
	}

	if err := exporter.Export(MessageOrderListData, selectionOf(ids...), "/print.html"); err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}

	// 整批失敗後改為逐筆查詢，次數恰為批次大小
	if len(fetcher.singleCalls) != 50 {
		t.Errorf("逐筆查詢次數 = %d, 預期 50", len(fetcher.singleCalls))
	}
	orders := window.messages[0].Orders.([]models.WooOrder)
	if len(orders) != 50 {
		t.Errorf("匯出訂單數 = %d, 預期 50", len(orders))
	}
}

func TestExportSingleFailureUsesCachedSummary(t *testing.T) {
	fetcher := &fakeFetcher{batchFails: true, singleFailID: map[int]bool{2: true, 3: true}}
	window := &fakeWindow{}
	exporter, _ := newTestExporter(fetcher, &fakeOpener{window: window})

	// 訂單 2 有列表頁快取可退用，訂單 3 沒有，只能略過
	exporter.CacheSummaries([]models.WooOrder{{ID: 2, DateCreated: "2026-01-03T10:00:00"}})

	if err := exporter.Export(MessageOrderListData, selectionOf(1, 2, 3), "/print.html"); err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}

	orders := window.messages[0].Orders.([]models.WooOrder)
	if len(orders) != 2 {
		t.Fatalf("匯出訂單數 = %d, 預期 2（訂單 3 略過）", len(orders))
	}
	found := false
	for _, order := range orders {
		if order.ID == 2 {
			found = true
		}
		if order.ID == 3 {
			t.Error("訂單 3 沒有任何資料來源，不應出現在匯出內容")
		}
	}
	if !found {
		t.Error("訂單 2 應由列表頁快取補上")
	}
}

func TestExportAbortsWhenNothingResolved(t *testing.T) {
	fetcher := &fakeFetcher{batchFails: true, singleFailID: map[int]bool{1: true, 2: true}}
	window := &fakeWindow{}
	notifier := NewNotifier()
	exporter := NewExporter(fetcher, &fakeOpener{window: window}, notifier)
	exporter.sleep = func(time.Duration) {}

	err := exporter.Export(MessageOrderListData, selectionOf(1, 2), "/print.html")
	if !errors.Is(err, ErrNoExportData) {
		t.Fatalf("一筆都取不到時應回傳 ErrNoExportData, 實際 %v", err)
	}
	// 空陣列不能送進列印視窗，視窗要關掉並提示失敗
	if len(window.messages) != 0 {
		t.Errorf("訊息數 = %d, 取不到資料時不應送出訊息", len(window.messages))
	}
	if !window.closed {
		t.Error("取不到資料時應關閉已開啟的列印視窗")
	}
	if len(notifier.Active()) == 0 {
		t.Error("匯出失敗應跳出錯誤通知")
	}
}

func TestExportAbortsWhenWindowClosed(t *testing.T) {
	window := &fakeWindow{closed: true}
	notifier := NewNotifier()
	exporter := NewExporter(&fakeFetcher{}, &fakeOpener{window: window}, notifier)
	exporter.sleep = func(time.Duration) {}

	err := exporter.Export(MessageOrderListData, selectionOf(1), "/print.html")
	if !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("視窗已關閉時應回傳 ErrWindowClosed, 實際 %v", err)
	}
	if len(window.messages) != 0 {
		t.Error("視窗已關閉時不應送出訊息")
	}
	if len(notifier.Active()) == 0 {
		t.Error("匯出中止應跳出錯誤通知")
	}
}

func TestSelectAllState(t *testing.T) {
	selection := NewSelectionSet()
	visible := []int{1, 2, 3}

	if state := selection.SelectAllState(visible); state != SelectAllNone {
		t.Errorf("全沒勾時狀態 = %s, 預期 %s", state, SelectAllNone)
	}

	selection.Toggle(1)
	if state := selection.SelectAllState(visible); state != SelectAllSome {
		t.Errorf("部分勾選時狀態 = %s, 預期 %s", state, SelectAllSome)
	}

	selection.SelectAll(visible)
	if state := selection.SelectAllState(visible); state != SelectAllAll {
		t.Errorf("全勾時狀態 = %s, 預期 %s", state, SelectAllAll)
	}
}

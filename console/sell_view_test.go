package console

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shop_console/models"
)

func TestValidateUploadFiles(t *testing.T) {
	err := ValidateUploadFiles([]UploadFile{
		{Name: "orders.xlsx"},
		{Name: "report.csv"},
	})
	if err == nil {
		t.Fatal("含非 .xlsx 檔案時應整批拒絕")
	}

	if err := ValidateUploadFiles(nil); err == nil {
		t.Error("沒選檔案時應回傳錯誤")
	}

	if err := ValidateUploadFiles([]UploadFile{{Name: "ORDERS.XLSX"}}); err != nil {
		t.Errorf("副檔名大小寫不應影響驗證: %v", err)
	}
}

func TestUploadRejectedBeforeAnyRequest(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	t.Cleanup(server.Close)

	view := NewSellView(NewClient(server.URL), NewNotifier())
	if err := view.Upload([]UploadFile{{Name: "report.csv"}}); err == nil {
		t.Fatal("非 .xlsx 檔案應被拒絕")
	}

	// 驗證在送出前完成，伺服器不該收到任何請求
	if atomic.LoadInt64(&requests) != 0 {
		t.Errorf("請求數 = %d, 預期 0", requests)
	}
}

func TestUploadBadge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/orders/upload":
			w.Write([]byte(`{"rows":12}`))
		case "/orders/uploaded/summary":
			w.Write([]byte(`[]`))
		case "/orders/uploaded/last":
			w.Write([]byte(`{"last_uploaded_at":null}`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(server.Close)

	view := NewSellView(NewClient(server.URL), NewNotifier())
	if view.UploadBadge() != "" {
		t.Error("尚未上傳時徽章應為空")
	}

	if err := view.Upload([]UploadFile{{Name: "orders.xlsx", Content: []byte("x")}}); err != nil {
		t.Fatalf("上傳失敗: %v", err)
	}
	if badge := view.UploadBadge(); badge != "12 筆" {
		t.Errorf("徽章文字 = %q, 預期 %q", badge, "12 筆")
	}
}

func TestSellSelectionToggle(t *testing.T) {
	view := NewSellView(nil, NewNotifier())
	view.summaries = []models.UploadedOrderSummary{
		{OrderNo: "A001"},
		{OrderNo: "A002"},
	}

	view.Toggle("A001")
	view.Toggle("A002")
	selected := view.Selected()
	if len(selected) != 2 {
		t.Fatalf("勾選數 = %d, 預期 2", len(selected))
	}

	view.Toggle("A001")
	selected = view.Selected()
	if len(selected) != 1 || selected[0].OrderNo != "A002" {
		t.Errorf("取消後勾選 = %v, 預期只剩 A002", selected)
	}
}

func TestSellExportUsesLoadedSummaries(t *testing.T) {
	view := NewSellView(nil, NewNotifier())
	view.summaries = []models.UploadedOrderSummary{
		{OrderNo: "A001"},
		{OrderNo: "A002"},
		{OrderNo: "A003"},
	}
	view.Toggle("A001")
	view.Toggle("A003")

	window := &fakeWindow{}
	opener := &fakeOpener{window: window}
	if err := view.Export(MessageSellOrderListData, opener, "/sell-print.html"); err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}

	if len(window.messages) != 1 {
		t.Fatalf("訊息數 = %d, 預期 1", len(window.messages))
	}
	orders := window.messages[0].Orders.([]models.UploadedOrderSummary)
	if len(orders) != 2 || orders[0].OrderNo != "A001" || orders[1].OrderNo != "A003" {
		t.Errorf("匯出內容 = %v, 預期依畫面順序的 A001 與 A003", orders)
	}
}

func TestSellExportSortsByOrderedAtAscending(t *testing.T) {
	view := NewSellView(nil, NewNotifier())
	// 畫面由新到舊，列印則要由舊到新
	view.summaries = []models.UploadedOrderSummary{
		{OrderNo: "B005", OrderedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
		{OrderNo: "A001", OrderedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	view.Toggle("B005")
	view.Toggle("A001")

	window := &fakeWindow{}
	if err := view.Export(MessageSellOrderListData, &fakeOpener{window: window}, "/sell-print.html"); err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}

	orders := window.messages[0].Orders.([]models.UploadedOrderSummary)
	if len(orders) != 2 || orders[0].OrderNo != "A001" || orders[1].OrderNo != "B005" {
		t.Errorf("匯出順序 = %v, 預期依下單時間由舊到新", orders)
	}
}

func TestSellExportEmptySelection(t *testing.T) {
	view := NewSellView(nil, NewNotifier())
	opener := &fakeOpener{window: &fakeWindow{}}

	if err := view.Export(MessageSellOrderListData, opener, "/sell-print.html"); err == nil {
		t.Fatal("未勾選時應拒絕匯出")
	}
	if opener.openCount != 0 {
		t.Errorf("開視窗次數 = %d, 預期 0", opener.openCount)
	}
}

package console

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shop_console/models"
)

func TestSetReminderRejectsPastTime(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	view := NewChecklistView(NewClient(server.URL), NewNotifier())
	view.now = func() time.Time { return now }
	view.items = []models.ChecklistItem{{ID: 1, Text: "補印出貨單"}}

	// 過去的時間在送出前就擋下
	err := view.SetReminder(1, now.Add(-time.Hour))
	if !errors.Is(err, ErrReminderInPast) {
		t.Fatalf("過去的提醒時間應回傳 ErrReminderInPast, 實際 %v", err)
	}
	if requests != 0 {
		t.Errorf("請求數 = %d, 預期 0", requests)
	}
}

func TestAddSkipsBlankLines(t *testing.T) {
	posted := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"text":"補印出貨單"}]`))
	}))
	t.Cleanup(server.Close)

	view := NewChecklistView(NewClient(server.URL), NewNotifier())

	// 全是空白行就不發請求
	if err := view.Add([]string{"  ", ""}); err != nil {
		t.Fatalf("空白行不應回傳錯誤: %v", err)
	}
	if posted != 0 {
		t.Errorf("請求數 = %d, 預期 0", posted)
	}

	if err := view.Add([]string{"補印出貨單", " "}); err != nil {
		t.Fatalf("新增失敗: %v", err)
	}
	if posted != 1 {
		t.Errorf("請求數 = %d, 預期 1", posted)
	}
	if len(view.Items()) != 1 {
		t.Errorf("事項數 = %d, 預期 1", len(view.Items()))
	}
}

func TestChecklistRender(t *testing.T) {
	view := NewChecklistView(nil, NewNotifier())
	view.items = []models.ChecklistItem{
		{ID: 1, Text: "補印出貨單", Checked: true},
		{ID: 2, Text: "聯絡 <廠商>"},
	}

	rendered := view.Render().Render()
	if !strings.Contains(rendered, "checklist-item checked") {
		t.Errorf("已完成項目應帶 checked 樣式: %s", rendered)
	}
	// 項目文字要跳脫後輸出
	if strings.Contains(rendered, "<廠商>") {
		t.Errorf("項目文字未跳脫: %s", rendered)
	}
}

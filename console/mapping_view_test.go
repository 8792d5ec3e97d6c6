package console

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop_console/controllers"
)

func TestMappingEditBlankReloadsWithoutUpdate(t *testing.T) {
	puts := 0
	gets := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			puts++
		case http.MethodGet:
			gets++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	view := NewMappingView(NewClient(server.URL), NewNotifier())

	// 清成空白視為取消，重新載入還原顯示，不送出更新
	if err := view.Edit(5, "   "); err != nil {
		t.Fatalf("空白編輯不應回傳錯誤: %v", err)
	}
	if puts != 0 {
		t.Errorf("PUT 次數 = %d, 預期 0", puts)
	}
	if gets != 1 {
		t.Errorf("GET 次數 = %d, 預期 1（重新載入）", gets)
	}
}

func TestMappingEditSendsUpdate(t *testing.T) {
	puts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":5,"mapped_name":"白色上衣"}`))
	}))
	t.Cleanup(server.Close)

	view := NewMappingView(NewClient(server.URL), NewNotifier())
	if err := view.Edit(5, "白色上衣"); err != nil {
		t.Fatalf("編輯失敗: %v", err)
	}
	if puts != 1 {
		t.Errorf("PUT 次數 = %d, 預期 1", puts)
	}
}

func TestMappingResetRestoresOriginalName(t *testing.T) {
	var putBody controllers.MappingUpdateRequest
	puts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":5,"source":"sell","original_name":"原始品名A","mapped_name":"統一品名"}]`))
		case http.MethodPut:
			puts++
			json.NewDecoder(r.Body).Decode(&putBody)
			w.Write([]byte(`{"id":5,"source":"sell","original_name":"原始品名A","mapped_name":"原始品名A"}`))
		}
	}))
	t.Cleanup(server.Close)

	view := NewMappingView(NewClient(server.URL), NewNotifier())
	if err := view.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	// 還原走與編輯相同的更新路徑，把對應名稱改回原始品名
	if err := view.Reset(5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if puts != 1 {
		t.Fatalf("PUT 次數 = %d, 預期 1", puts)
	}
	if putBody.MappedName != "原始品名A" {
		t.Errorf("送出的對應名稱 = %q, 預期原始品名", putBody.MappedName)
	}
	if got := view.Mappings()[0].MappedName; got != "原始品名A" {
		t.Errorf("畫面上的對應名稱 = %q, 預期已還原", got)
	}
}

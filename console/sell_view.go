package console

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"shop_console/models"
)

// UploadFile 待上傳的報表檔案
type UploadFile struct {
	Name    string
	Content []byte
}

// SellView 賣貨便訂單頁
type SellView struct {
	client   *Client
	notifier *Notifier

	summaries []models.UploadedOrderSummary

	// selection 以訂單編號記錄勾選狀態
	selection map[string]struct{}

	// StartDate 與 EndDate 為 YYYY-MM-DD，留空表示不限
	StartDate string
	EndDate   string

	lastUploadedAt time.Time
	uploadedRows   int
}

// NewSellView 建立賣貨便訂單頁
func NewSellView(client *Client, notifier *Notifier) *SellView {
	return &SellView{
		client:    client,
		notifier:  notifier,
		selection: map[string]struct{}{},
	}
}

// ValidateUploadFiles 檢查待上傳檔案，任何一個不是 .xlsx 就整批拒絕
// 驗證在送出前完成，失敗時不會發出任何請求
func ValidateUploadFiles(files []UploadFile) error {
	if len(files) == 0 {
		return fmt.Errorf("請選擇要上傳的報表檔案")
	}
	for _, file := range files {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".xlsx") {
			return fmt.Errorf("%s 不是 .xlsx 檔案", file.Name)
		}
	}
	return nil
}

// Upload 逐一上傳報表檔案並累計寫入列數
func (v *SellView) Upload(files []UploadFile) error {
	if err := ValidateUploadFiles(files); err != nil {
		v.notifier.Push(NotifyError, err.Error())
		return err
	}

	total := 0
	for _, file := range files {
		rows, err := v.client.UploadReport(file.Name, file.Content)
		if err != nil {
			v.notifier.Push(NotifyError, fmt.Sprintf("上傳 %s 失敗：%v", file.Name, err))
			return err
		}
		total += rows
	}

	v.uploadedRows = total
	v.notifier.Push(NotifySuccess, fmt.Sprintf("上傳完成，共 %d 筆", total))
	return v.Reload()
}

// UploadBadge 上傳結果徽章文字，尚未上傳時為空字串
func (v *SellView) UploadBadge() string {
	if v.uploadedRows == 0 {
		return ""
	}
	return fmt.Sprintf("%d 筆", v.uploadedRows)
}

// Reload 依日期區間重新載入訂單彙總與最後上傳時間
func (v *SellView) Reload() error {
	summaries, err := v.client.UploadedSummaries(v.StartDate, v.EndDate)
	if err != nil {
		v.notifier.Push(NotifyError, "載入賣貨便訂單失敗："+err.Error())
		return err
	}
	v.summaries = summaries

	// 勾選狀態只保留仍在畫面上的訂單
	existing := map[string]struct{}{}
	for _, summary := range summaries {
		existing[summary.OrderNo] = struct{}{}
	}
	for orderNo := range v.selection {
		if _, ok := existing[orderNo]; !ok {
			delete(v.selection, orderNo)
		}
	}

	if lastUploadedAt, err := v.client.LastUpload(); err == nil {
		v.lastUploadedAt = lastUploadedAt
	}
	return nil
}

// Summaries 目前載入的訂單彙總
func (v *SellView) Summaries() []models.UploadedOrderSummary {
	return v.summaries
}

// LastUploadedLabel 最後上傳時間的顯示文字
func (v *SellView) LastUploadedLabel() string {
	if v.lastUploadedAt.IsZero() {
		return "尚未上傳"
	}
	return v.lastUploadedAt.Format("2006-01-02 15:04")
}

// Toggle 切換單筆訂單的勾選狀態
func (v *SellView) Toggle(orderNo string) {
	if _, ok := v.selection[orderNo]; ok {
		delete(v.selection, orderNo)
		return
	}
	v.selection[orderNo] = struct{}{}
}

// Selected 已勾選的訂單彙總，依畫面順序排列
func (v *SellView) Selected() []models.UploadedOrderSummary {
	selected := make([]models.UploadedOrderSummary, 0, len(v.selection))
	for _, summary := range v.summaries {
		if _, ok := v.selection[summary.OrderNo]; ok {
			selected = append(selected, summary)
		}
	}
	return selected
}

// Clear 清空伺服器上的賣貨便訂單並重新載入
func (v *SellView) Clear() error {
	if err := v.client.ClearUploaded(); err != nil {
		v.notifier.Push(NotifyError, "清空賣貨便訂單失敗："+err.Error())
		return err
	}
	v.selection = map[string]struct{}{}
	v.uploadedRows = 0
	return v.Reload()
}

// Export 把勾選的訂單送進列印視窗
// 彙總資料已在頁面上，直接取用不再重新查詢；送出前依下單時間由舊到新排序
func (v *SellView) Export(messageType string, opener WindowOpener, printURL string) error {
	selected := v.Selected()
	if len(selected) == 0 {
		v.notifier.Push(NotifyError, "請先勾選要匯出的訂單")
		return ErrEmptySelection
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].OrderedAt.Before(selected[j].OrderedAt)
	})

	window, err := opener.Open(printURL)
	if err != nil {
		v.notifier.Push(NotifyError, "無法開啟列印視窗")
		return err
	}

	if window.Closed() {
		v.notifier.Push(NotifyError, "列印視窗已關閉，匯出中止")
		return ErrWindowClosed
	}

	message := WindowMessage{Type: messageType, Orders: selected}
	if err := window.Post(message); err != nil {
		v.notifier.Push(NotifyError, "傳送訂單資料失敗")
		return err
	}
	return nil
}

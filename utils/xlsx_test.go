package utils

import (
	"testing"
	"time"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Order No", "orderno"},
		{"訂單編號：", "訂單編號"},
		{" Unit_Price ", "unitprice"},
		{"商品名稱/規格", "商品名稱規格"},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.raw); got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, 預期 %q", c.raw, got, c.want)
		}
	}
}

func TestDetectHeaderRow(t *testing.T) {
	rows := [][]string{
		{"賣貨便訂單報表"},
		{},
		{"訂單編號", "訂購日期", "收件人", "取件地址", "商品名稱", "單價", "優惠價", "數量", "備註"},
		{"A001", "2026/01/02 10:00:00", "王小明", "台北市", "白色上衣", "500", "450", "2", ""},
	}

	headerIndex, dataStart, err := DetectHeaderRow(rows)
	if err != nil {
		t.Fatalf("DetectHeaderRow 失敗: %v", err)
	}
	if dataStart != 3 {
		t.Errorf("資料起始列 = %d, 預期 3", dataStart)
	}
	if headerIndex["order_no"] != 0 || headerIndex["qty"] != 7 {
		t.Errorf("欄位索引不正確: %v", headerIndex)
	}
}

func TestDetectHeaderRowMissingColumns(t *testing.T) {
	rows := [][]string{
		{"訂單編號", "收件人"},
		{"A001", "王小明"},
	}
	if _, _, err := DetectHeaderRow(rows); err == nil {
		t.Error("缺少必要欄位時應回傳錯誤")
	}
}

func TestParseNumber(t *testing.T) {
	got, err := ParseNumber("1,250.5")
	if err != nil {
		t.Fatalf("ParseNumber 失敗: %v", err)
	}
	if got != 1250.5 {
		t.Errorf("ParseNumber = %v, 預期 1250.5", got)
	}

	if _, err := ParseNumber("  "); err == nil {
		t.Error("空白欄位應回傳錯誤")
	}
}

func TestParseInteger(t *testing.T) {
	got, err := ParseInteger("12.0")
	if err != nil {
		t.Fatalf("ParseInteger 失敗: %v", err)
	}
	if got != 12 {
		t.Errorf("ParseInteger = %d, 預期 12", got)
	}

	if _, err := ParseInteger("12.5"); err == nil {
		t.Error("帶小數的數量應回傳錯誤")
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026/01/02 10:30:00")
	if err != nil {
		t.Fatalf("ParseDateTime 失敗: %v", err)
	}
	want := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTime = %v, 預期 %v", got, want)
	}

	// Excel 序號 45292 為 2024-01-01
	serial, err := ParseDateTime("45292")
	if err != nil {
		t.Fatalf("解析 Excel 序號失敗: %v", err)
	}
	if serial.Year() != 2024 || serial.Month() != time.January || serial.Day() != 1 {
		t.Errorf("Excel 序號解析結果 = %v, 預期 2024-01-01", serial)
	}

	if _, err := ParseDateTime("不是日期"); err == nil {
		t.Error("無法解析的日期應回傳錯誤")
	}
}

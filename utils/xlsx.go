package utils

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// 賣貨便報表欄位名稱對照，鍵為正規化後的標題
var normalizedHeaderMapping = map[string]string{
	"orderno":     "order_no",
	"ordernumber": "order_no",
	"order_no":    "order_no",
	"訂單編號":        "order_no",

	"orderedat":       "ordered_at",
	"ordereddatetime": "ordered_at",
	"ordereddate":     "ordered_at",
	"orderedtime":     "ordered_at",
	"ordered_at":      "ordered_at",
	"訂購日期":            "ordered_at",
	"訂單日期":            "ordered_at",

	"receivername": "receiver_name",
	"收件人姓名":        "receiver_name",
	"收件人":          "receiver_name",

	"address": "address",
	"取件地址":    "address",
	"地址":      "address",

	"productname": "product_name",
	"商品名稱":        "product_name",

	"unitprice":  "unit_price",
	"unit_price": "unit_price",
	"單價":         "unit_price",

	"discountprice":   "discount_price",
	"discount_price":  "discount_price",
	"優惠價":             "discount_price",
	"折扣後價格":           "discount_price",
	"discountedprice": "discount_price",

	"qty":      "qty",
	"quantity": "qty",
	"數量":       "qty",

	"note": "note",
	"備註":   "note",
	"訂單備註": "note",
}

// 部分報表的標題帶有額外文字，改用包含比對
var headerContainsMapping = []struct {
	substr string
	key    string
}{
	{substr: "商品名稱", key: "product_name"},
	{substr: "品名", key: "product_name"},
	{substr: "規格", key: "product_name"},
	{substr: "付款方式", key: "payment_method"},
}

var requiredUploadedColumns = []string{
	"order_no",
	"ordered_at",
	"receiver_name",
	"address",
	"product_name",
	"unit_price",
	"discount_price",
	"qty",
	"note",
}

// NormalizeHeader 去除標題中的空白與標點，轉為小寫
func NormalizeHeader(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	replacer := strings.NewReplacer(
		" ", "", "_", "", "-", "", "：", "", ":", "",
		"(", "", ")", "", "（", "", "）", "", ".", "", "。", "",
		"、", "", "/", "", "／", "",
		"\n", "", "\r", "", "\t", "",
	)
	return replacer.Replace(cleaned)
}

// BuildHeaderIndex 由標題列建立欄位索引，回傳缺少的必要欄位
func BuildHeaderIndex(header []string) (map[string]int, []string, error) {
	index := make(map[string]int)
	for idx, raw := range header {
		norm := NormalizeHeader(raw)
		if key, ok := normalizedHeaderMapping[norm]; ok {
			index[key] = idx
			continue
		}

		for _, candidate := range headerContainsMapping {
			target := NormalizeHeader(candidate.substr)
			if target != "" && strings.Contains(norm, target) {
				if _, exists := index[candidate.key]; !exists {
					index[candidate.key] = idx
				}
				break
			}
		}
	}

	var missing []string
	for _, required := range requiredUploadedColumns {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, missing, fmt.Errorf("缺少必要欄位：%s", strings.Join(missing, ","))
	}

	return index, nil, nil
}

// DetectHeaderRow 在報表前幾列中尋找完整的標題列，回傳欄位索引與資料起始列
func DetectHeaderRow(rows [][]string) (map[string]int, int, error) {
	for idx, row := range rows {
		if !RowHasData(row) {
			continue
		}
		if headerIndex, missing, err := BuildHeaderIndex(row); err == nil {
			return headerIndex, idx + 1, nil
		} else if len(missing) > 0 {
			log.Printf("試驗標題列 第 %d 列缺少欄位：%s", idx+1, strings.Join(missing, ", "))
		}
	}
	return nil, 0, fmt.Errorf("找不到包含完整標題列的資料")
}

// RowHasData 整列是否有任何非空白儲存格
func RowHasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

// ParseNumber 解析可能帶千分位逗號的數字
func ParseNumber(raw string) (float64, error) {
	clean := strings.ReplaceAll(strings.ReplaceAll(raw, ",", ""), "，", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, fmt.Errorf("空的數字欄位")
	}
	return strconv.ParseFloat(clean, 64)
}

// ParseInteger 解析整數，允許 12.0 這類小數點後為零的格式
func ParseInteger(raw string) (int, error) {
	clean := strings.ReplaceAll(strings.ReplaceAll(raw, ",", ""), "，", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, fmt.Errorf("空的數字欄位")
	}

	if strings.Contains(clean, ".") {
		parsed, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, err
		}
		if math.Mod(parsed, 1) > 0 {
			return 0, fmt.Errorf("數量必須是整數")
		}
		return int(parsed), nil
	}

	return strconv.Atoi(clean)
}

// ParseDateTime 解析報表日期，支援 Excel 序號與常見的年月日格式
func ParseDateTime(raw string) (time.Time, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return time.Time{}, fmt.Errorf("空的日期欄位")
	}

	if numeric, err := strconv.ParseFloat(clean, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(numeric, false); err == nil {
			return t, nil
		}
	}

	layouts := []string{
		"2006/01/02 15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
		"2006-01-02",
		"2006.01.02 15:04:05",
		"2006.1.2 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("無法解析日期：%s", raw)
}

// ParseDateParam 解析查詢字串中的 YYYY-MM-DD 日期
func ParseDateParam(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}

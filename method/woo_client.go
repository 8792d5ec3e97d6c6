package method

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"shop_console/config"
	"shop_console/db"
	"shop_console/models"
)

// 官網訂單快取鍵與存活時間，縮短對通路 API 的連續請求
const (
	processingOrdersCacheKey = "woo:processing_orders"
	processingOrdersCacheTTL = 60 * time.Second
)

func wooRequest(url string) ([]byte, error) {
	appConfig := config.LoadConfig()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("建立請求失敗: %w", err)
	}
	req.SetBasicAuth(appConfig.WooAPIKey, appConfig.WooAPISecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("請求官網 API 失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("讀取回應失敗: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("官網 API 回應狀態碼 %d - %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// FetchProcessingOrders 取得官網處理中訂單，結果以 Redis 快取一分鐘
func FetchProcessingOrders() ([]models.WooOrder, error) {
	ctx := context.Background()

	if db.RDB != nil {
		if cached, err := db.RDB.Get(ctx, processingOrdersCacheKey).Bytes(); err == nil {
			var orders []models.WooOrder
			if err := json.Unmarshal(cached, &orders); err == nil {
				return orders, nil
			}
			// 快取內容壞掉就當沒有，重新抓
			log.Printf("官網訂單快取解析失敗，重新抓取: %v", err)
		}
	}

	appConfig := config.LoadConfig()
	url := appConfig.WooBaseURL + "/wp-json/wc/v3/orders?status=processing&per_page=100"

	body, err := wooRequest(url)
	if err != nil {
		return nil, err
	}

	var orders []models.WooOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("解析官網訂單失敗: %w", err)
	}

	for i := range orders {
		orders[i].CvsStoreName = ExtractCvsStoreName(orders[i].MetaData)
		orders[i].PickupNumber = ExtractPickupNumber(orders[i].MetaData)
	}

	if db.RDB != nil {
		if err := db.RDB.Set(ctx, processingOrdersCacheKey, body, processingOrdersCacheTTL).Err(); err != nil {
			log.Printf("寫入官網訂單快取失敗: %v", err)
		}
	}

	return orders, nil
}

// FetchSingleOrder 取得單筆官網訂單
func FetchSingleOrder(orderID int) (models.WooOrder, error) {
	appConfig := config.LoadConfig()
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders/%d", appConfig.WooBaseURL, orderID)

	body, err := wooRequest(url)
	if err != nil {
		return models.WooOrder{}, err
	}

	var order models.WooOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return models.WooOrder{}, fmt.Errorf("解析官網訂單失敗: %w", err)
	}
	order.CvsStoreName = ExtractCvsStoreName(order.MetaData)
	order.PickupNumber = ExtractPickupNumber(order.MetaData)

	return order, nil
}

// FetchMultipleOrders 以 include 參數一次取得多筆官網訂單
func FetchMultipleOrders(orderIDs []int) ([]models.WooOrder, error) {
	if len(orderIDs) == 0 {
		return []models.WooOrder{}, nil
	}

	includeParam := ""
	for i, id := range orderIDs {
		if i > 0 {
			includeParam += ","
		}
		includeParam += strconv.Itoa(id)
	}

	appConfig := config.LoadConfig()
	url := fmt.Sprintf("%s/wp-json/wc/v3/orders?include=%s&per_page=%d", appConfig.WooBaseURL, includeParam, len(orderIDs))

	body, err := wooRequest(url)
	if err != nil {
		return nil, err
	}

	var orders []models.WooOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("解析官網訂單失敗: %w", err)
	}
	for i := range orders {
		orders[i].CvsStoreName = ExtractCvsStoreName(orders[i].MetaData)
		orders[i].PickupNumber = ExtractPickupNumber(orders[i].MetaData)
	}

	return orders, nil
}

// ExtractCvsStoreName 從綠界出貨附加欄位取出超商門市名稱
func ExtractCvsStoreName(metaData []models.MetaData) string {
	for _, meta := range metaData {
		if meta.Key != "_ecpay_shipping_info" {
			continue
		}
		info, ok := meta.Value.(map[string]any)
		if !ok {
			return ""
		}
		for _, v := range info {
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := entry["CVSStoreName"].(string); ok {
				return name
			}
		}
	}
	return ""
}

// ExtractPickupNumber 從綠界出貨附加欄位組出取貨單號
func ExtractPickupNumber(metaData []models.MetaData) string {
	for _, meta := range metaData {
		if meta.Key != "_ecpay_shipping_info" {
			continue
		}
		info, ok := meta.Value.(map[string]any)
		if !ok {
			return ""
		}
		for _, v := range info {
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			paymentNo, _ := entry["PaymentNo"].(string)
			validationNo, _ := entry["ValidationNo"].(string)
			if paymentNo != "" || validationNo != "" {
				return paymentNo + validationNo
			}
		}
	}
	return ""
}

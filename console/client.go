package console

import (
	"bytes"
	"fmt"
	"net/url"
	"time"

	"shop_console/controllers"
	"shop_console/models"

	"github.com/go-resty/resty/v2"
)

// Client 管理後台對伺服器 API 的存取封裝
type Client struct {
	http *resty.Client
}

// NewClient 建立 API 客戶端，baseURL 為伺服器位址
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: client}
}

// SetAccessToken 設定後續請求攜帶的存取權杖
func (c *Client) SetAccessToken(token string) {
	c.http.SetAuthToken(token)
}

type apiError struct {
	Error string `json:"error"`
}

// checkResponse 將非 2xx 回應轉為錯誤，優先使用伺服器的錯誤訊息
func checkResponse(resp *resty.Response, errBody *apiError) error {
	if resp.IsSuccess() {
		return nil
	}
	if errBody != nil && errBody.Error != "" {
		return fmt.Errorf("%s", errBody.Error)
	}
	return fmt.Errorf("伺服器回應 %d", resp.StatusCode())
}

// ListOrders 取得處理中訂單，篩選條件由伺服器套用
func (c *Client) ListOrders(filter OrderQuery) ([]models.WooOrder, error) {
	var orders []models.WooOrder
	var errBody apiError

	req := c.http.R().SetResult(&orders).SetError(&errBody)
	if len(filter.Tags) > 0 {
		req.SetQueryParamsFromValues(url.Values{"tags": filter.Tags})
	}
	if filter.HasRemark {
		req.SetQueryParam("has_remark", "true")
	}
	if filter.HasCustomerNote {
		req.SetQueryParam("has_customer_note", "true")
	}
	if filter.StartDate != "" {
		req.SetQueryParam("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		req.SetQueryParam("end_date", filter.EndDate)
	}

	resp, err := req.Get("/api/orders")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder 取得單筆訂單完整內容
func (c *Client) GetOrder(orderID int) (models.WooOrder, error) {
	var order models.WooOrder
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&order).
		SetError(&errBody).
		Get(fmt.Sprintf("/api/orders/%d", orderID))
	if err != nil {
		return order, err
	}
	return order, checkResponse(resp, &errBody)
}

// BatchOrders 一次取得多筆訂單完整內容
func (c *Client) BatchOrders(orderIDs []int) ([]models.WooOrder, error) {
	var orders []models.WooOrder
	var errBody apiError

	resp, err := c.http.R().
		SetBody(controllers.BatchRequest{OrderIDs: orderIDs}).
		SetResult(&orders).
		SetError(&errBody).
		Post("/api/orders/batch")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderMetadata 覆寫訂單的備註、標籤與完成狀態
func (c *Client) UpdateOrderMetadata(orderID int, request controllers.MetadataUpdateRequest) (models.OrderMetadata, error) {
	var metadata models.OrderMetadata
	var errBody apiError

	resp, err := c.http.R().
		SetBody(request).
		SetResult(&metadata).
		SetError(&errBody).
		Put(fmt.Sprintf("/api/orders/%d", orderID))
	if err != nil {
		return metadata, err
	}
	return metadata, checkResponse(resp, &errBody)
}

// SearchOrders 跨通路以商品名稱搜尋訂單
func (c *Client) SearchOrders(request controllers.ProductSearchRequest) (controllers.ProductSearchResponse, error) {
	var result controllers.ProductSearchResponse
	var errBody apiError

	resp, err := c.http.R().
		SetBody(request).
		SetResult(&result).
		SetError(&errBody).
		Post("/api/orders/search-by-products")
	if err != nil {
		return result, err
	}
	return result, checkResponse(resp, &errBody)
}

// ListChecklist 取得全部待辦事項
func (c *Client) ListChecklist() ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&items).
		SetError(&errBody).
		Get("/api/checklist")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateChecklistItems 新增一批待辦事項
func (c *Client) CreateChecklistItems(payload models.ChecklistPayload) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	var errBody apiError

	resp, err := c.http.R().
		SetBody(payload).
		SetResult(&items).
		SetError(&errBody).
		Post("/api/checklist")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateChecklistItem 更新單筆待辦事項，fields 僅需帶要變更的欄位
func (c *Client) UpdateChecklistItem(itemID int, fields map[string]any) (models.ChecklistItem, error) {
	var item models.ChecklistItem
	var errBody apiError

	resp, err := c.http.R().
		SetBody(fields).
		SetResult(&item).
		SetError(&errBody).
		Patch(fmt.Sprintf("/api/checklist/%d", itemID))
	if err != nil {
		return item, err
	}
	return item, checkResponse(resp, &errBody)
}

// DeleteChecklistItem 刪除單筆待辦事項
func (c *Client) DeleteChecklistItem(itemID int) error {
	var errBody apiError

	resp, err := c.http.R().
		SetError(&errBody).
		Delete(fmt.Sprintf("/api/checklist/%d", itemID))
	if err != nil {
		return err
	}
	return checkResponse(resp, &errBody)
}

// UploadReport 上傳賣貨便報表，回傳寫入的列數
func (c *Client) UploadReport(fileName string, content []byte) (int, error) {
	var result struct {
		Rows int `json:"rows"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetFileReader("file", fileName, bytes.NewReader(content)).
		SetResult(&result).
		SetError(&errBody).
		Post("/orders/upload")
	if err != nil {
		return 0, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return 0, err
	}
	return result.Rows, nil
}

// UploadShippingReport 上傳賣貨便出貨報表，回傳寫入的列數
func (c *Client) UploadShippingReport(fileName string, content []byte) (int, error) {
	var result struct {
		Rows int `json:"rows"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetFileReader("file", fileName, bytes.NewReader(content)).
		SetResult(&result).
		SetError(&errBody).
		Post("/orders/upload-shipping")
	if err != nil {
		return 0, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return 0, err
	}
	return result.Rows, nil
}

// UploadedSummaries 取得賣貨便訂單彙總，日期為 YYYY-MM-DD，可留空
func (c *Client) UploadedSummaries(startDate, endDate string) ([]models.UploadedOrderSummary, error) {
	var summaries []models.UploadedOrderSummary
	var errBody apiError

	req := c.http.R().SetResult(&summaries).SetError(&errBody)
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.Get("/orders/uploaded/summary")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return summaries, nil
}

// LastUpload 取得最後一次報表上傳時間，從未上傳時回傳零值
func (c *Client) LastUpload() (time.Time, error) {
	var result struct {
		LastUploadedAt *string `json:"last_uploaded_at"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&result).
		SetError(&errBody).
		Get("/orders/uploaded/last")
	if err != nil {
		return time.Time{}, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return time.Time{}, err
	}
	if result.LastUploadedAt == nil {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, *result.LastUploadedAt)
}

// ClearUploaded 清空賣貨便訂單
func (c *Client) ClearUploaded() error {
	var errBody apiError

	resp, err := c.http.R().
		SetError(&errBody).
		Delete("/orders/uploaded")
	if err != nil {
		return err
	}
	return checkResponse(resp, &errBody)
}

// ShippingSummaries 取得賣貨便出貨訂單彙總
func (c *Client) ShippingSummaries(startDate, endDate string) ([]models.UploadedOrderSummary, error) {
	var summaries []models.UploadedOrderSummary
	var errBody apiError

	req := c.http.R().SetResult(&summaries).SetError(&errBody)
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.Get("/orders/uploaded-shipping/summary")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return summaries, nil
}

// ClearUploadedShipping 清空賣貨便出貨訂單
func (c *Client) ClearUploadedShipping() error {
	var errBody apiError

	resp, err := c.http.R().
		SetError(&errBody).
		Delete("/orders/uploaded-shipping")
	if err != nil {
		return err
	}
	return checkResponse(resp, &errBody)
}

// PickingList 取得官網揀貨表
func (c *Client) PickingList(startDate, endDate string) ([]models.PickingListItem, error) {
	var items []models.PickingListItem
	var errBody apiError

	req := c.http.R().SetResult(&items).SetError(&errBody)
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.Get("/api/picking-list")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return items, nil
}

// CombinedPicking 取得官網與賣貨便合併揀貨表
func (c *Client) CombinedPicking() ([]models.CombinedPickingItem, error) {
	var items []models.CombinedPickingItem
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&items).
		SetError(&errBody).
		Get("/api/combined-picking-list")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return items, nil
}

// SellPicking 取得賣貨便揀貨表
func (c *Client) SellPicking(startDate, endDate string) ([]models.ProductPickingItem, error) {
	var items []models.ProductPickingItem
	var errBody apiError

	req := c.http.R().SetResult(&items).SetError(&errBody)
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.Get("/orders/picking")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return items, nil
}

// ListProductMappings 取得全部商品名稱對應
func (c *Client) ListProductMappings() ([]models.ProductMapping, error) {
	var mappings []models.ProductMapping
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&mappings).
		SetError(&errBody).
		Get("/api/product-mappings")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return mappings, nil
}

// UpdateProductMapping 更新單筆對應名稱
func (c *Client) UpdateProductMapping(mappingID int, mappedName string) (models.ProductMapping, error) {
	var mapping models.ProductMapping
	var errBody apiError

	resp, err := c.http.R().
		SetBody(controllers.MappingUpdateRequest{MappedName: mappedName}).
		SetResult(&mapping).
		SetError(&errBody).
		Put(fmt.Sprintf("/api/product-mappings/%d", mappingID))
	if err != nil {
		return mapping, err
	}
	return mapping, checkResponse(resp, &errBody)
}

// SyncProductMappings 觸發商品名稱掃描，回傳新增的列數
func (c *Client) SyncProductMappings() (int, error) {
	var result struct {
		Created int `json:"created"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetResult(&result).
		SetError(&errBody).
		Post("/api/product-mappings/sync")
	if err != nil {
		return 0, err
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return 0, err
	}
	return result.Created, nil
}

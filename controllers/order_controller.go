package controllers

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"shop_console/db"
	"shop_console/method"
	"shop_console/models"
	"shop_console/service/msg"
	"shop_console/utils"

	"github.com/gin-gonic/gin"
)

// OrderController 官網訂單控制器
type OrderController struct{}

// NewOrderController 建立官網訂單控制器實例
func NewOrderController() *OrderController {
	return &OrderController{}
}

// OrderFilter 訂單列表的伺服器端篩選條件
type OrderFilter struct {
	Tags            []string
	HasRemark       bool
	HasCustomerNote bool
	StartDate       time.Time
	EndDate         time.Time
}

// parseOrderDate 解析官網訂單的成立時間，通路回傳不帶時區
func parseOrderDate(raw string) (time.Time, bool) {
	layouts := []string{"2006-01-02T15:04:05", time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MatchOrder 判斷單筆訂單是否通過篩選條件
func MatchOrder(order models.WooOrder, filter OrderFilter) bool {
	if len(filter.Tags) > 0 {
		hasAnyTag := false
		for _, reqTag := range filter.Tags {
			for _, orderTag := range order.OrderMetadata.Tags {
				if reqTag == orderTag {
					hasAnyTag = true
					break
				}
			}
			if hasAnyTag {
				break
			}
		}
		if !hasAnyTag {
			return false
		}
	}

	if filter.HasRemark && order.OrderMetadata.Remark == "" {
		return false
	}

	if filter.HasCustomerNote && order.CustomerNote == "" {
		return false
	}

	if !filter.StartDate.IsZero() || !filter.EndDate.IsZero() {
		created, ok := parseOrderDate(order.DateCreated)
		if !ok {
			return false
		}
		if !filter.StartDate.IsZero() && created.Before(filter.StartDate) {
			return false
		}
		// 結束日為含當日整天
		if !filter.EndDate.IsZero() && !created.Before(filter.EndDate.AddDate(0, 0, 1)) {
			return false
		}
	}

	return true
}

// FilterOrders 套用篩選條件，回傳通過的訂單
func FilterOrders(orders []models.WooOrder, filter OrderFilter) []models.WooOrder {
	filtered := make([]models.WooOrder, 0, len(orders))
	for _, order := range orders {
		if MatchOrder(order, filter) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// attachMetadata 為一批訂單補上附加資料，缺少的列順手建立
func attachMetadata(orders []models.WooOrder) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]int, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	var metadatas []models.OrderMetadata
	if err := db.DB.Where("order_id IN ?", orderIDs).Find(&metadatas).Error; err != nil {
		return err
	}

	metadataMap := make(map[int]models.OrderMetadata)
	for _, m := range metadatas {
		metadataMap[m.OrderID] = m
	}

	for i := range orders {
		if m, ok := metadataMap[orders[i].ID]; ok {
			orders[i].OrderMetadata = m
			continue
		}
		newMeta := models.OrderMetadata{OrderID: orders[i].ID, Remark: "", Tags: []string{}}
		if err := db.DB.Create(&newMeta).Error; err != nil {
			return err
		}
		orders[i].OrderMetadata = newMeta
	}
	return nil
}

func parseOrderFilter(c *gin.Context) (OrderFilter, bool) {
	filter := OrderFilter{
		Tags:            c.QueryArray("tags"),
		HasRemark:       c.Query("has_remark") == "true",
		HasCustomerNote: c.Query("has_customer_note") == "true",
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := utils.ParseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date 格式錯誤，需為 YYYY-MM-DD"})
			return filter, false
		}
		filter.StartDate = start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := utils.ParseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date 格式錯誤，需為 YYYY-MM-DD"})
			return filter, false
		}
		filter.EndDate = end
	}
	return filter, true
}

// List 取得處理中訂單，套用標籤、備註、客戶備註與日期區間篩選
func (oc *OrderController) List(c *gin.Context) {
	filter, ok := parseOrderFilter(c)
	if !ok {
		return
	}

	wooOrders, err := method.FetchProcessingOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := attachMetadata(wooOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取訂單附加資料失敗"})
		return
	}

	c.JSON(http.StatusOK, FilterOrders(wooOrders, filter))
}

// Get 取得單筆訂單
func (oc *OrderController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "訂單編號格式錯誤"})
		return
	}

	wooOrder, err := method.FetchSingleOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orders := []models.WooOrder{wooOrder}
	if err := attachMetadata(orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取訂單附加資料失敗"})
		return
	}

	c.JSON(http.StatusOK, orders[0])
}

// MetadataUpdateRequest 更新訂單附加資料的請求內容，標籤一律整組覆寫
type MetadataUpdateRequest struct {
	Remark      string   `json:"remark"`
	Tags        []string `json:"tags"`
	IsCompleted bool     `json:"is_completed"`
}

// UpdateMetadata 更新訂單附加資料
func (oc *OrderController) UpdateMetadata(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "訂單編號格式錯誤"})
		return
	}

	var request MetadataUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		log.Printf("訂單附加資料綁定失敗: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg.BindingErrorMessage(err)})
		return
	}

	if request.Tags == nil {
		request.Tags = []string{}
	}

	metadata := models.OrderMetadata{
		OrderID:     id,
		Remark:      request.Remark,
		Tags:        request.Tags,
		IsCompleted: request.IsCompleted,
	}

	if err := db.DB.Save(&metadata).Error; err != nil {
		log.Printf("儲存訂單 %d 附加資料失敗: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "儲存訂單附加資料失敗"})
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// BatchRequest 批次查詢訂單的請求內容
type BatchRequest struct {
	OrderIDs []int `json:"order_ids"`
}

// Batch 一次取得多筆訂單完整內容，單次上限 100 筆
func (oc *OrderController) Batch(c *gin.Context) {
	var request BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請求內容格式錯誤"})
		return
	}

	if len(request.OrderIDs) == 0 {
		c.JSON(http.StatusOK, []models.WooOrder{})
		return
	}

	if len(request.OrderIDs) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "單次最多查詢 100 筆訂單"})
		return
	}

	orders, err := method.FetchMultipleOrders(request.OrderIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := attachMetadata(orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取訂單附加資料失敗"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// 商品搜尋模式
const (
	SearchModeAny      = "any"
	SearchModeAll      = "all"
	SearchModeExcludes = "excludes"
)

// ProductSearchRequest 以商品搜尋訂單的請求內容
type ProductSearchRequest struct {
	ProductNames         []string `json:"product_names"`
	Mode                 string   `json:"mode"`
	ExcludedProductNames []string `json:"excluded_product_names"`
}

// ProductSearchResponse 兩個通路各自符合的訂單
type ProductSearchResponse struct {
	WooOrders  []models.WooOrder             `json:"woo_orders"`
	SellOrders []models.UploadedOrderSummary `json:"sell_orders"`
}

// matchProductSet 以統一名稱集合判斷訂單是否符合搜尋條件
func matchProductSet(canonicalNames map[string]bool, request ProductSearchRequest) bool {
	for _, excluded := range request.ExcludedProductNames {
		if canonicalNames[excluded] {
			return false
		}
	}

	switch request.Mode {
	case SearchModeAll:
		for _, name := range request.ProductNames {
			if !canonicalNames[name] {
				return false
			}
		}
		return true
	case SearchModeExcludes:
		if len(request.ProductNames) == 0 {
			return true
		}
		fallthrough
	default:
		for _, name := range request.ProductNames {
			if canonicalNames[name] {
				return true
			}
		}
		return false
	}
}

// SearchWooOrders 在官網訂單中找出商品符合條件者，名稱先經對應轉換
func SearchWooOrders(orders []models.WooOrder, mappings []models.ProductMapping, request ProductSearchRequest) []models.WooOrder {
	matched := make([]models.WooOrder, 0)
	for _, order := range orders {
		canonical := make(map[string]bool)
		for _, item := range order.LineItems {
			canonical[method.MappedName(mappings, models.SourceWooCommerce, item.Name)] = true
		}
		if matchProductSet(canonical, request) {
			matched = append(matched, order)
		}
	}
	return matched
}

// SearchSellOrders 在賣貨便訂單彙總中找出商品符合條件者
func SearchSellOrders(summaries []models.UploadedOrderSummary, mappings []models.ProductMapping, request ProductSearchRequest) []models.UploadedOrderSummary {
	matched := make([]models.UploadedOrderSummary, 0)
	for _, summary := range summaries {
		canonical := make(map[string]bool)
		for _, item := range summary.Items {
			canonical[method.MappedName(mappings, models.SourceSell, item.ProductName)] = true
		}
		if matchProductSet(canonical, request) {
			matched = append(matched, summary)
		}
	}
	return matched
}

// SearchByProducts 跨通路以商品名稱搜尋訂單
func (oc *OrderController) SearchByProducts(c *gin.Context) {
	var request ProductSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請求內容格式錯誤"})
		return
	}

	request.Mode = strings.TrimSpace(request.Mode)
	if request.Mode == "" {
		request.Mode = SearchModeAny
	}
	if request.Mode != SearchModeAny && request.Mode != SearchModeAll && request.Mode != SearchModeExcludes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode 僅接受 any、all 或 excludes"})
		return
	}
	if len(request.ProductNames) == 0 && request.Mode != SearchModeExcludes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請至少選擇一個搜尋商品"})
		return
	}
	if len(request.ProductNames) == 0 && len(request.ExcludedProductNames) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請至少選擇一個搜尋商品或排除商品"})
		return
	}

	var mappings []models.ProductMapping
	if err := db.DB.Find(&mappings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢商品對應失敗"})
		return
	}

	wooOrders, err := method.FetchProcessingOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := attachMetadata(wooOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取訂單附加資料失敗"})
		return
	}

	var uploaded []models.UploadedOrder
	if err := db.DB.Order("ordered_at desc, id desc").Find(&uploaded).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢賣貨便訂單失敗"})
		return
	}
	summaries := BuildUploadedOrderSummaries(uploaded)

	matchedWoo := SearchWooOrders(wooOrders, mappings, request)
	sort.Slice(matchedWoo, func(i, j int) bool {
		ti, _ := parseOrderDate(matchedWoo[i].DateCreated)
		tj, _ := parseOrderDate(matchedWoo[j].DateCreated)
		return ti.Before(tj)
	})

	c.JSON(http.StatusOK, ProductSearchResponse{
		WooOrders:  matchedWoo,
		SellOrders: SearchSellOrders(summaries, mappings, request),
	})
}

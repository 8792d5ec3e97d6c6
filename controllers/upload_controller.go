package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"shop_console/db"
	"shop_console/models"
	"shop_console/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// UploadController 賣貨便報表上傳與彙總控制器
type UploadController struct{}

// NewUploadController 建立上傳控制器實例
func NewUploadController() *UploadController {
	return &UploadController{}
}

// ParseUploadedRow 解析報表的單一資料列，rowNumber 為 1 起算的列號，僅用於錯誤訊息
func ParseUploadedRow(row []string, headerIndex map[string]int, rowNumber int) (models.UploadedOrder, error) {
	get := func(column string) string {
		if idx, ok := headerIndex[column]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	order := models.UploadedOrder{}
	if value := get("order_no"); value != "" {
		order.OrderNo = value
	} else {
		return order, fmt.Errorf("第 %d 列缺少訂單編號", rowNumber)
	}

	if value := get("receiver_name"); value != "" {
		order.ReceiverName = value
	} else {
		return order, fmt.Errorf("第 %d 列缺少收件人", rowNumber)
	}

	if value := get("address"); value != "" {
		order.Address = value
	} else {
		return order, fmt.Errorf("第 %d 列缺少取件地址", rowNumber)
	}

	if value := get("product_name"); value != "" {
		order.ProductName = value
	} else {
		return order, fmt.Errorf("第 %d 列缺少商品名稱", rowNumber)
	}

	order.Note = get("note")

	if value := get("ordered_at"); value != "" {
		parsed, err := utils.ParseDateTime(value)
		if err != nil {
			return order, fmt.Errorf("第 %d 列的訂購日期格式錯誤：%w", rowNumber, err)
		}
		order.OrderedAt = parsed
	} else {
		return order, fmt.Errorf("第 %d 列缺少訂購日期", rowNumber)
	}

	if value := get("unit_price"); value != "" {
		parsed, err := utils.ParseNumber(value)
		if err != nil {
			return order, fmt.Errorf("第 %d 列的單價格式錯誤：%w", rowNumber, err)
		}
		order.UnitPrice = parsed
	} else {
		return order, fmt.Errorf("第 %d 列缺少單價", rowNumber)
	}

	if value := get("discount_price"); value != "" {
		parsed, err := utils.ParseNumber(value)
		if err != nil {
			return order, fmt.Errorf("第 %d 列的優惠價格式錯誤：%w", rowNumber, err)
		}
		order.DiscountPrice = parsed
	} else {
		return order, fmt.Errorf("第 %d 列缺少優惠價", rowNumber)
	}

	if value := get("qty"); value != "" {
		parsed, err := utils.ParseInteger(value)
		if err != nil {
			return order, fmt.Errorf("第 %d 列的數量格式錯誤：%w", rowNumber, err)
		}
		order.Qty = parsed
	} else {
		return order, fmt.Errorf("第 %d 列缺少數量", rowNumber)
	}

	return order, nil
}

// parseUploadedWorkbook 讀取上傳的 xlsx，回傳解析後的訂單列
func (uc *UploadController) parseUploadedWorkbook(c *gin.Context) ([]models.UploadedOrder, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file 欄位缺失"})
		return nil, false
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "僅接受 .xlsx 檔案"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法讀取上傳檔案"})
		return nil, false
	}
	defer src.Close()

	xl, err := excelize.OpenReader(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("解析檔案失敗：%v", err)})
		return nil, false
	}

	sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())
	if sheetName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "找不到有效的工作表"})
		return nil, false
	}

	rows, err := xl.GetRows(sheetName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "讀取工作表資料失敗"})
		return nil, false
	}

	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "沒有資料"})
		return nil, false
	}

	headerIndex, dataStartRow, err := utils.DetectHeaderRow(rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var orders []models.UploadedOrder
	for i := dataStartRow; i < len(rows); i++ {
		if !utils.RowHasData(rows[i]) {
			continue
		}
		order, err := ParseUploadedRow(rows[i], headerIndex, i+1)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		orders = append(orders, order)
	}

	return orders, true
}

func recordUploadBatch() error {
	return db.DB.Create(&models.UploadBatch{UploadedAt: time.Now()}).Error
}

// Upload 上傳賣貨便訂單報表
func (uc *UploadController) Upload(c *gin.Context) {
	orders, ok := uc.parseUploadedWorkbook(c)
	if !ok {
		return
	}

	if len(orders) > 0 {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&orders).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := recordUploadBatch(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("賣貨便報表上傳完成，共 %d 列", len(orders))
	c.JSON(http.StatusOK, gin.H{"rows": len(orders)})
}

// UploadShipping 上傳賣貨便出貨報表，寫入出貨專用的資料表
func (uc *UploadController) UploadShipping(c *gin.Context) {
	orders, ok := uc.parseUploadedWorkbook(c)
	if !ok {
		return
	}

	if len(orders) > 0 {
		shipping := make([]models.UploadedShippingOrder, len(orders))
		for i, order := range orders {
			shipping[i] = models.UploadedShippingOrder{
				OrderNo:       order.OrderNo,
				OrderedAt:     order.OrderedAt,
				ReceiverName:  order.ReceiverName,
				Address:       order.Address,
				ProductName:   order.ProductName,
				UnitPrice:     order.UnitPrice,
				DiscountPrice: order.DiscountPrice,
				Qty:           order.Qty,
				Note:          order.Note,
			}
		}
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&shipping).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := recordUploadBatch(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("賣貨便出貨報表上傳完成，共 %d 列", len(orders))
	c.JSON(http.StatusOK, gin.H{"rows": len(orders)})
}

// BuildUploadedOrderSummaries 以訂單編號彙總報表列
// 訂購日期取最早的一列，收件人與地址取第一個非空值
func BuildUploadedOrderSummaries(rows []models.UploadedOrder) []models.UploadedOrderSummary {
	grouped := make(map[string]*models.UploadedOrderSummary)
	for _, row := range rows {
		if row.OrderNo == "" {
			continue
		}

		summary, exists := grouped[row.OrderNo]
		if !exists {
			summary = &models.UploadedOrderSummary{
				OrderNo:      row.OrderNo,
				OrderedAt:    row.OrderedAt,
				ReceiverName: row.ReceiverName,
				Address:      row.Address,
				Items:        []models.UploadedOrderItem{},
			}
			grouped[row.OrderNo] = summary
		}

		if !row.OrderedAt.IsZero() {
			if summary.OrderedAt.IsZero() || row.OrderedAt.Before(summary.OrderedAt) {
				summary.OrderedAt = row.OrderedAt
			}
		}

		if summary.ReceiverName == "" {
			summary.ReceiverName = row.ReceiverName
		}
		if summary.Address == "" {
			summary.Address = row.Address
		}

		summary.TotalQty += row.Qty
		summary.TotalAmount += row.DiscountPrice * float64(row.Qty)
		summary.Items = append(summary.Items, models.UploadedOrderItem{
			ProductName:   row.ProductName,
			UnitPrice:     row.UnitPrice,
			DiscountPrice: row.DiscountPrice,
			Qty:           row.Qty,
			Note:          row.Note,
		})
	}

	summaries := make([]models.UploadedOrderSummary, 0, len(grouped))
	for _, summary := range grouped {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OrderedAt.After(summaries[j].OrderedAt)
	})

	return summaries
}

// BuildProductPicking 以商品名稱彙總報表列，數量多者在前
func BuildProductPicking(rows []models.UploadedOrder) []models.ProductPickingItem {
	type accumulator struct {
		totalQty int
		orders   map[string]struct{}
	}

	byProduct := make(map[string]*accumulator)
	for _, row := range rows {
		name := strings.TrimSpace(row.ProductName)
		if name == "" {
			continue
		}

		acc, ok := byProduct[name]
		if !ok {
			acc = &accumulator{orders: map[string]struct{}{}}
			byProduct[name] = acc
		}

		acc.totalQty += row.Qty
		if row.OrderNo != "" {
			acc.orders[row.OrderNo] = struct{}{}
		}
	}

	list := make([]models.ProductPickingItem, 0, len(byProduct))
	for productName, acc := range byProduct {
		orderNos := make([]string, 0, len(acc.orders))
		for no := range acc.orders {
			orderNos = append(orderNos, no)
		}
		sort.Strings(orderNos)
		list = append(list, models.ProductPickingItem{
			ProductName: productName,
			TotalQty:    acc.totalQty,
			OrderNos:    orderNos,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].TotalQty == list[j].TotalQty {
			return list[i].ProductName < list[j].ProductName
		}
		return list[i].TotalQty > list[j].TotalQty
	})

	return list
}

// parseDateRangeQuery 解析查詢字串的日期區間，結束日含當日整天
func parseDateRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	var start, end time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := utils.ParseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date 格式錯誤，需為 YYYY-MM-DD"})
			return start, end, false
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := utils.ParseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date 格式錯誤，需為 YYYY-MM-DD"})
			return start, end, false
		}
		end = parsed.AddDate(0, 0, 1)
	}
	return start, end, true
}

func applyOrderedAtRange(query *gorm.DB, start, end time.Time) *gorm.DB {
	if !start.IsZero() {
		query = query.Where("ordered_at >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("ordered_at < ?", end)
	}
	return query
}

// ListUploaded 取得所有已上傳的報表列
func (uc *UploadController) ListUploaded(c *gin.Context) {
	var stored []models.UploadedOrder
	if err := db.DB.Order("id desc").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// UploadedSummary 取得以訂單編號彙總的賣貨便訂單
func (uc *UploadController) UploadedSummary(c *gin.Context) {
	start, end, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	var stored []models.UploadedOrder
	query := applyOrderedAtRange(db.DB.Model(&models.UploadedOrder{}), start, end)
	if err := query.Order("ordered_at desc, id desc").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BuildUploadedOrderSummaries(stored))
}

// UploadedShippingSummary 取得以訂單編號彙總的賣貨便出貨訂單
func (uc *UploadController) UploadedShippingSummary(c *gin.Context) {
	start, end, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	var stored []models.UploadedShippingOrder
	query := applyOrderedAtRange(db.DB.Model(&models.UploadedShippingOrder{}), start, end)
	if err := query.Order("ordered_at desc, id desc").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]models.UploadedOrder, len(stored))
	for i, row := range stored {
		rows[i] = models.UploadedOrder{
			OrderNo:       row.OrderNo,
			OrderedAt:     row.OrderedAt,
			ReceiverName:  row.ReceiverName,
			Address:       row.Address,
			ProductName:   row.ProductName,
			UnitPrice:     row.UnitPrice,
			DiscountPrice: row.DiscountPrice,
			Qty:           row.Qty,
			Note:          row.Note,
		}
	}

	c.JSON(http.StatusOK, BuildUploadedOrderSummaries(rows))
}

// LastUpload 取得最後一次報表上傳時間
func (uc *UploadController) LastUpload(c *gin.Context) {
	var batch models.UploadBatch
	err := db.DB.Order("uploaded_at desc").First(&batch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"last_uploaded_at": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"last_uploaded_at": batch.UploadedAt.Format(time.RFC3339)})
}

func truncateTable(tableName string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		switch tx.Dialector.Name() {
		case "postgres":
			return tx.Exec("TRUNCATE TABLE " + tableName + " RESTART IDENTITY").Error
		default:
			return tx.Exec("DELETE FROM " + tableName).Error
		}
	})
}

// ClearUploaded 清空賣貨便訂單
func (uc *UploadController) ClearUploaded(c *gin.Context) {
	if err := truncateTable("uploaded_orders"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// ClearUploadedShipping 清空賣貨便出貨訂單
func (uc *UploadController) ClearUploadedShipping(c *gin.Context) {
	if err := truncateTable("uploaded_shipping_orders"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// SellPicking 取得賣貨便揀貨表，可用日期區間篩選
func (uc *UploadController) SellPicking(c *gin.Context) {
	start, end, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	var stored []models.UploadedOrder
	query := applyOrderedAtRange(db.DB.Model(&models.UploadedOrder{}), start, end)
	if err := query.Order("product_name, order_no").Find(&stored).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, BuildProductPicking(stored))
}

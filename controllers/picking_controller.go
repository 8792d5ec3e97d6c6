package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"shop_console/db"
	"shop_console/method"
	"shop_console/models"

	"github.com/gin-gonic/gin"
)

// PickingController 揀貨表控制器
type PickingController struct{}

// NewPickingController 建立揀貨表控制器實例
func NewPickingController() *PickingController {
	return &PickingController{}
}

// BuildWooPickingList 彙總官網訂單的品項數量，數量多者在前
func BuildWooPickingList(orders []models.WooOrder) []models.PickingListItem {
	type accumulator struct {
		quantity int
		orderIDs []int
		seen     map[int]struct{}
	}

	byName := make(map[string]*accumulator)
	for _, order := range orders {
		for _, item := range order.LineItems {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				continue
			}

			acc, ok := byName[name]
			if !ok {
				acc = &accumulator{seen: map[int]struct{}{}}
				byName[name] = acc
			}

			acc.quantity += item.Quantity
			if _, dup := acc.seen[order.ID]; !dup {
				acc.seen[order.ID] = struct{}{}
				acc.orderIDs = append(acc.orderIDs, order.ID)
			}
		}
	}

	list := make([]models.PickingListItem, 0, len(byName))
	for name, acc := range byName {
		sort.Ints(acc.orderIDs)
		list = append(list, models.PickingListItem{
			Name:     name,
			Quantity: acc.quantity,
			OrderIDs: acc.orderIDs,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity == list[j].Quantity {
			return list[i].Name < list[j].Name
		}
		return list[i].Quantity > list[j].Quantity
	})

	return list
}

// filterWooOrdersByDate 以訂單建立時間篩選官網訂單，結束日含當日整天
func filterWooOrdersByDate(orders []models.WooOrder, start, end time.Time) []models.WooOrder {
	if start.IsZero() && end.IsZero() {
		return orders
	}

	filtered := make([]models.WooOrder, 0, len(orders))
	for _, order := range orders {
		created, ok := parseOrderDate(order.DateCreated)
		if !ok {
			continue
		}
		if !start.IsZero() && created.Before(start) {
			continue
		}
		if !end.IsZero() && !created.Before(end) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

// List 取得官網處理中訂單的揀貨表，可用日期區間篩選
func (pc *PickingController) List(c *gin.Context) {
	start, end, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	orders, err := method.FetchProcessingOrders()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "取得官網訂單失敗：" + err.Error()})
		return
	}

	orders = filterWooOrdersByDate(orders, start, end)
	c.JSON(http.StatusOK, BuildWooPickingList(orders))
}

// BuildCombinedPicking 合併官網與賣貨便的揀貨需求
// 品名先經過商品對應表轉成統一名稱後再彙總
func BuildCombinedPicking(wooOrders []models.WooOrder, sellRows []models.UploadedOrder, mappings []models.ProductMapping) []models.CombinedPickingItem {
	type accumulator struct {
		wooQty   int
		sellQty  int
		orderIDs []int
		orderNos []string
		seenIDs  map[int]struct{}
		seenNos  map[string]struct{}
	}

	byName := make(map[string]*accumulator)
	lookup := func(source, name string) *accumulator {
		canonical := method.MappedName(mappings, source, name)
		acc, ok := byName[canonical]
		if !ok {
			acc = &accumulator{seenIDs: map[int]struct{}{}, seenNos: map[string]struct{}{}}
			byName[canonical] = acc
		}
		return acc
	}

	for _, order := range wooOrders {
		for _, item := range order.LineItems {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				continue
			}
			acc := lookup(models.SourceWooCommerce, name)
			acc.wooQty += item.Quantity
			if _, dup := acc.seenIDs[order.ID]; !dup {
				acc.seenIDs[order.ID] = struct{}{}
				acc.orderIDs = append(acc.orderIDs, order.ID)
			}
		}
	}

	for _, row := range sellRows {
		name := strings.TrimSpace(row.ProductName)
		if name == "" {
			continue
		}
		acc := lookup(models.SourceSell, name)
		acc.sellQty += row.Qty
		if row.OrderNo != "" {
			if _, dup := acc.seenNos[row.OrderNo]; !dup {
				acc.seenNos[row.OrderNo] = struct{}{}
				acc.orderNos = append(acc.orderNos, row.OrderNo)
			}
		}
	}

	combined := make([]models.CombinedPickingItem, 0, len(byName))
	for name, acc := range byName {
		sources := ""
		switch {
		case acc.wooQty > 0 && acc.sellQty > 0:
			sources = models.SourcesBoth
		case acc.sellQty > 0:
			sources = models.SourcesSell
		default:
			sources = models.SourcesWoo
		}

		sort.Ints(acc.orderIDs)
		sort.Strings(acc.orderNos)
		combined = append(combined, models.CombinedPickingItem{
			ProductName:    name,
			TotalQty:       acc.wooQty + acc.sellQty,
			WooCommerceQty: acc.wooQty,
			SellQty:        acc.sellQty,
			Sources:        sources,
			OrderIDs:       acc.orderIDs,
			OrderNos:       acc.orderNos,
		})
	}

	sort.Slice(combined, func(i, j int) bool {
		if combined[i].TotalQty == combined[j].TotalQty {
			return combined[i].ProductName < combined[j].ProductName
		}
		return combined[i].TotalQty > combined[j].TotalQty
	})

	return combined
}

// Combined 取得官網與賣貨便合併後的揀貨表
// 合併表反映目前的全部待出貨需求，不接受日期區間
func (pc *PickingController) Combined(c *gin.Context) {
	wooOrders, err := method.FetchProcessingOrders()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "取得官網訂單失敗：" + err.Error()})
		return
	}

	var sellRows []models.UploadedOrder
	if err := db.DB.Find(&sellRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var mappings []models.ProductMapping
	if err := db.DB.Find(&mappings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BuildCombinedPicking(wooOrders, sellRows, mappings))
}

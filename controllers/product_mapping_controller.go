package controllers

import (
	"net/http"
	"strings"
	"time"

	"shop_console/db"
	"shop_console/method"
	"shop_console/models"
	"shop_console/service/msg"

	"github.com/gin-gonic/gin"
)

// ProductMappingController 商品名稱對應控制器
type ProductMappingController struct{}

// NewProductMappingController 建立商品對應控制器實例
func NewProductMappingController() *ProductMappingController {
	return &ProductMappingController{}
}

// List 取得全部商品名稱對應，依來源與原始名稱排序
func (pm *ProductMappingController) List(c *gin.Context) {
	var mappings []models.ProductMapping
	if err := db.DB.Order("source, original_name").Find(&mappings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mappings)
}

// MappingUpdateRequest 更新對應名稱的請求內容
type MappingUpdateRequest struct {
	MappedName string `json:"mapped_name" binding:"required"`
}

// Update 更新單筆對應名稱，空白名稱視為無效
func (pm *ProductMappingController) Update(c *gin.Context) {
	var mapping models.ProductMapping
	if err := db.DB.First(&mapping, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到指定的商品對應"})
		return
	}

	var req MappingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg.BindingErrorMessage(err)})
		return
	}

	mappedName := strings.TrimSpace(req.MappedName)
	if mappedName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "對應名稱不能為空"})
		return
	}

	mapping.MappedName = mappedName
	mapping.UpdatedAt = time.Now()
	if err := db.DB.Save(&mapping).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mapping)
}

// Sync 掃描兩個通路的商品名稱，為尚未建檔的名稱補上對應列
func (pm *ProductMappingController) Sync(c *gin.Context) {
	created, err := method.SyncProductMappings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

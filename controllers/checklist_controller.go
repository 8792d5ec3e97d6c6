package controllers

import (
	"net/http"
	"time"

	"shop_console/db"
	"shop_console/models"
	"shop_console/service/msg"

	"github.com/gin-gonic/gin"
)

// ChecklistController 待辦清單控制器
type ChecklistController struct{}

// NewChecklistController 建立待辦清單控制器實例
func NewChecklistController() *ChecklistController {
	return &ChecklistController{}
}

// List 取得所有待辦項目
func (cc *ChecklistController) List(c *gin.Context) {
	var items []models.ChecklistItem
	if err := db.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢待辦清單失敗"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListPending 取得尚未完成的待辦項目
func (cc *ChecklistController) ListPending(c *gin.Context) {
	var items []models.ChecklistItem
	if err := db.DB.Where("checked = ?", false).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢待辦清單失敗"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create 批次新增待辦項目
func (cc *ChecklistController) Create(c *gin.Context) {
	var body models.ChecklistPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg.BindingErrorMessage(err)})
		return
	}

	for _, item := range body.Items {
		record := models.ChecklistItem{Text: item.Text, Checked: item.Checked}
		if err := db.DB.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "新增待辦項目失敗"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// Update 更新單一待辦項目，提醒時間必須在未來
// reminder_date 傳 null 代表清除提醒，因此用 map 綁定以區分「省略」與「null」
func (cc *ChecklistController) Update(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請求內容格式錯誤"})
		return
	}

	id := c.Param("id")
	var item models.ChecklistItem
	if err := db.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "待辦項目不存在"})
		return
	}

	if value, ok := raw["checked"]; ok {
		checked, ok := value.(bool)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "checked 必須是布林值"})
			return
		}
		item.Checked = checked
	}

	if value, ok := raw["text"]; ok {
		text, ok := value.(string)
		if !ok || text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text 不可為空"})
			return
		}
		item.Text = text
	}

	// 舊版頁面送 camelCase 鍵名，一併接受
	value, ok := raw["reminder_date"]
	if !ok {
		value, ok = raw["reminderDate"]
	}
	if ok {
		if value == nil {
			item.ReminderDate = nil
			item.ReminderSent = false
		} else {
			text, ok := value.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_date 格式錯誤"})
				return
			}
			reminder, err := time.Parse(time.RFC3339, text)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_date 格式錯誤"})
				return
			}
			if !reminder.After(time.Now()) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "提醒時間必須在未來"})
				return
			}
			item.ReminderDate = &reminder
			item.ReminderSent = false
		}
	}

	if err := db.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新待辦項目失敗"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete 刪除單一待辦項目
func (cc *ChecklistController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := db.DB.Delete(&models.ChecklistItem{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除待辦項目失敗"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

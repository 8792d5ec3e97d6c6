package models

import "time"

// ChecklistItem 待辦清單項目
type ChecklistItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Text         string     `json:"text"`
	Checked      bool       `json:"checked"`
	ReminderDate *time.Time `json:"reminder_date"`
	// 提醒簡訊是否已送出，排程用，不回傳前端
	ReminderSent bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// ChecklistPayload 批次新增待辦項目的請求內容
type ChecklistPayload struct {
	Items []ChecklistItem `json:"items"`
}

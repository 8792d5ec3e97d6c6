package method

import (
	"fmt"
	"log"
	"time"

	"shop_console/config"
	"shop_console/db"
	"shop_console/models"
	"shop_console/other_method/message"
)

// StartReminderScheduler 啟動待辦提醒排程，每分鐘檢查一次到期的提醒
// 未設定簡訊憑證與收件手機時不會被呼叫
func StartReminderScheduler(appConfig *config.AppConfig) {
	log.Println("待辦提醒排程啟動，每分鐘檢查一次")

	for {
		runReminderPass(appConfig, time.Now())

		// 對齊到下一個整分
		now := time.Now()
		next := now.Truncate(time.Minute).Add(time.Minute)
		time.Sleep(next.Sub(now))
	}
}

func runReminderPass(appConfig *config.AppConfig, now time.Time) {
	var dueItems []models.ChecklistItem
	err := db.DB.
		Where("reminder_date IS NOT NULL AND reminder_date <= ? AND reminder_sent = ? AND checked = ?", now, false, false).
		Find(&dueItems).Error
	if err != nil {
		log.Printf("查詢到期提醒失敗: %v", err)
		return
	}

	for _, item := range dueItems {
		text := fmt.Sprintf("待辦提醒：%s", item.Text)
		if _, err := message.SendReminderSms(appConfig, appConfig.ReminderPhone, text); err != nil {
			log.Printf("提醒簡訊發送失敗（項目 %d）: %v", item.ID, err)
			continue
		}

		if err := db.DB.Model(&models.ChecklistItem{}).Where("id = ?", item.ID).Update("reminder_sent", true).Error; err != nil {
			log.Printf("標記提醒已送出失敗（項目 %d）: %v", item.ID, err)
			continue
		}
		log.Printf("提醒簡訊已送出（項目 %d）", item.ID)
	}
}

package console

import (
	"errors"
	"strings"
	"time"

	"shop_console/models"
)

// ErrReminderInPast 提醒時間早於現在
var ErrReminderInPast = errors.New("提醒時間必須在未來")

// ChecklistView 待辦清單頁
type ChecklistView struct {
	client   *Client
	notifier *Notifier

	items []models.ChecklistItem
	now   func() time.Time
}

// NewChecklistView 建立待辦清單頁
func NewChecklistView(client *Client, notifier *Notifier) *ChecklistView {
	return &ChecklistView{client: client, notifier: notifier, now: time.Now}
}

// Reload 重新載入全部待辦事項
func (v *ChecklistView) Reload() error {
	items, err := v.client.ListChecklist()
	if err != nil {
		v.notifier.Push(NotifyError, "載入待辦清單失敗："+err.Error())
		return err
	}
	v.items = items
	return nil
}

// Items 目前載入的待辦事項
func (v *ChecklistView) Items() []models.ChecklistItem {
	return v.items
}

// Add 新增待辦事項，空白行直接略過
func (v *ChecklistView) Add(texts []string) error {
	items := make([]models.ChecklistItem, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		items = append(items, models.ChecklistItem{Text: text})
	}
	if len(items) == 0 {
		return nil
	}

	created, err := v.client.CreateChecklistItems(models.ChecklistPayload{Items: items})
	if err != nil {
		v.notifier.Push(NotifyError, "新增待辦事項失敗："+err.Error())
		return err
	}
	v.items = append(v.items, created...)
	return nil
}

// Toggle 切換待辦事項的完成狀態
func (v *ChecklistView) Toggle(itemID int) error {
	for i := range v.items {
		if int(v.items[i].ID) != itemID {
			continue
		}

		updated, err := v.client.UpdateChecklistItem(itemID, map[string]any{
			"checked": !v.items[i].Checked,
		})
		if err != nil {
			v.notifier.Push(NotifyError, "更新待辦事項失敗："+err.Error())
			return err
		}
		v.items[i] = updated
		return nil
	}
	return nil
}

// SetReminder 設定提醒時間
// 過去的時間在送出前就擋下，不會發出請求
func (v *ChecklistView) SetReminder(itemID int, remindAt time.Time) error {
	if !remindAt.After(v.now()) {
		v.notifier.Push(NotifyError, "提醒時間必須在未來")
		return ErrReminderInPast
	}

	for i := range v.items {
		if int(v.items[i].ID) != itemID {
			continue
		}

		updated, err := v.client.UpdateChecklistItem(itemID, map[string]any{
			"reminder_date": remindAt.Format(time.RFC3339),
		})
		if err != nil {
			v.notifier.Push(NotifyError, "設定提醒失敗："+err.Error())
			return err
		}
		v.items[i] = updated
		return nil
	}
	return nil
}

// ClearReminder 取消提醒
func (v *ChecklistView) ClearReminder(itemID int) error {
	for i := range v.items {
		if int(v.items[i].ID) != itemID {
			continue
		}

		updated, err := v.client.UpdateChecklistItem(itemID, map[string]any{
			"reminder_date": nil,
		})
		if err != nil {
			v.notifier.Push(NotifyError, "取消提醒失敗："+err.Error())
			return err
		}
		v.items[i] = updated
		return nil
	}
	return nil
}

// Delete 刪除待辦事項
func (v *ChecklistView) Delete(itemID int) error {
	if err := v.client.DeleteChecklistItem(itemID); err != nil {
		v.notifier.Push(NotifyError, "刪除待辦事項失敗："+err.Error())
		return err
	}

	remaining := v.items[:0]
	for _, item := range v.items {
		if int(item.ID) != itemID {
			remaining = append(remaining, item)
		}
	}
	v.items = remaining
	return nil
}

// Render 輸出待辦清單的畫面節點
func (v *ChecklistView) Render() *Node {
	list := Elem("ul").WithAttr("class", "checklist")
	for _, item := range v.items {
		class := "checklist-item"
		if item.Checked {
			class += " checked"
		}

		node := Elem("li").WithAttr("class", class).Append(Text(item.Text))
		if item.ReminderDate != nil {
			node.Append(
				Elem("span").
					WithAttr("class", "reminder").
					WithText(item.ReminderDate.Format("2006-01-02 15:04")),
			)
		}
		list.Append(node)
	}
	return list
}

package console

import (
	"time"

	"github.com/google/uuid"
)

// 通知層級
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyError   = "error"
)

// notificationTTL 通知顯示時間，到期後自動消失
const notificationTTL = 3 * time.Second

// Notification 畫面右上角的浮動通知
type Notification struct {
	ID    uuid.UUID
	Level string
	Text  string
	At    time.Time
}

// Notifier 管理通知的產生與過期
type Notifier struct {
	notifications []Notification
	now           func() time.Time
}

// NewNotifier 建立通知管理器
func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Push 新增一則通知並回傳其識別碼
func (n *Notifier) Push(level, text string) uuid.UUID {
	notification := Notification{
		ID:    uuid.New(),
		Level: level,
		Text:  text,
		At:    n.now(),
	}
	n.notifications = append(n.notifications, notification)
	return notification.ID
}

// Active 回傳尚未過期的通知，並順手清掉過期的
func (n *Notifier) Active() []Notification {
	now := n.now()
	active := n.notifications[:0]
	for _, notification := range n.notifications {
		if now.Sub(notification.At) < notificationTTL {
			active = append(active, notification)
		}
	}
	n.notifications = active

	result := make([]Notification, len(active))
	copy(result, active)
	return result
}

// Dismiss 手動關閉指定通知
func (n *Notifier) Dismiss(id uuid.UUID) {
	remaining := n.notifications[:0]
	for _, notification := range n.notifications {
		if notification.ID != id {
			remaining = append(remaining, notification)
		}
	}
	n.notifications = remaining
}

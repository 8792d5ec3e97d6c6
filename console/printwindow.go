package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop_console/models"
)

// 列印視窗的訊息類型
const (
	MessagePickingListOrders     = "pickingListOrders"
	MessageOrderListData         = "orderListData"
	MessageSellPickingListOrders = "sellPickingListOrders"
	MessageSellOrderListData     = "sellOrderListData"
)

// WindowMessage 傳給列印視窗的完整訊息
// 每種類型只對應一種資料型別，用建構函式確保不會配錯
type WindowMessage struct {
	Type   string `json:"type"`
	Orders any    `json:"orders"`
}

// NewOrderListMessage 建立官網訂單明細訊息
func NewOrderListMessage(orders []models.WooOrder) WindowMessage {
	return WindowMessage{Type: MessageOrderListData, Orders: orders}
}

// NewPickingListMessage 建立官網揀貨訊息
func NewPickingListMessage(orders []models.WooOrder) WindowMessage {
	return WindowMessage{Type: MessagePickingListOrders, Orders: orders}
}

// NewSellOrderListMessage 建立賣貨便訂單明細訊息
func NewSellOrderListMessage(orders []models.UploadedOrderSummary) WindowMessage {
	return WindowMessage{Type: MessageSellOrderListData, Orders: orders}
}

// NewSellPickingListMessage 建立賣貨便揀貨訊息
func NewSellPickingListMessage(orders []models.UploadedOrderSummary) WindowMessage {
	return WindowMessage{Type: MessageSellPickingListOrders, Orders: orders}
}

// PrintWindow 代表已開啟的列印視窗
// 視窗必須在使用者操作的當下開啟，資料備妥後才送出訊息
type PrintWindow interface {
	// Post 送出訊息，視窗已關閉時回傳錯誤
	Post(message WindowMessage) error
	// Closed 視窗是否已被使用者關閉
	Closed() bool
	// Close 主動關閉視窗，已關閉時不做事
	Close()
}

// WindowOpener 開啟列印視窗的能力
type WindowOpener interface {
	Open(url string) (PrintWindow, error)
}

// IncomingMessage 列印視窗收到的原始訊息與其來源
type IncomingMessage struct {
	Origin  string
	Payload []byte
}

// LegacyStorage 舊版頁面用的暫存資料，等不到訊息時的備援來源
type LegacyStorage interface {
	Get(key string) (string, bool)
}

// receiveTimeout 等待訊息的時間上限，逾時改讀舊版暫存
const receiveTimeout = 10 * time.Second

// ErrNoOrderData 訊息與舊版暫存都沒有資料
var ErrNoOrderData = errors.New("等不到訂單資料")

// Receiver 列印視窗端的訊息接收器
type Receiver struct {
	allowedOrigin string
	expectedType  string
	storage       LegacyStorage
	timeout       time.Duration
}

// NewReceiver 建立接收器，只接受指定來源與訊息類型
func NewReceiver(allowedOrigin, expectedType string, storage LegacyStorage) *Receiver {
	return &Receiver{
		allowedOrigin: allowedOrigin,
		expectedType:  expectedType,
		storage:       storage,
		timeout:       receiveTimeout,
	}
}

// decode 驗證來源與類型後取出訂單資料，不符合的訊息直接略過
func (r *Receiver) decode(incoming IncomingMessage) (json.RawMessage, bool) {
	if incoming.Origin != r.allowedOrigin {
		return nil, false
	}

	var message struct {
		Type   string          `json:"type"`
		Orders json.RawMessage `json:"orders"`
	}
	if err := json.Unmarshal(incoming.Payload, &message); err != nil {
		return nil, false
	}
	if message.Type != r.expectedType {
		return nil, false
	}
	return message.Orders, true
}

// legacyFallback 從舊版暫存讀取訂單資料
func (r *Receiver) legacyFallback() (json.RawMessage, error) {
	if r.storage == nil {
		return nil, ErrNoOrderData
	}
	raw, ok := r.storage.Get(r.expectedType)
	if !ok || raw == "" {
		return nil, ErrNoOrderData
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("舊版暫存的訂單資料格式錯誤")
	}
	return json.RawMessage(raw), nil
}

// Await 等待訂單資料，逾時後改讀舊版暫存
func (r *Receiver) Await(messages <-chan IncomingMessage) (json.RawMessage, error) {
	deadline := time.NewTimer(r.timeout)
	defer deadline.Stop()

	for {
		select {
		case incoming, ok := <-messages:
			if !ok {
				return r.legacyFallback()
			}
			if orders, matched := r.decode(incoming); matched {
				return orders, nil
			}
		case <-deadline.C:
			return r.legacyFallback()
		}
	}
}

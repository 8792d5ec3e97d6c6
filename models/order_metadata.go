package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray 以 jsonb 欄位儲存的字串陣列
type StringArray []string

// Scan 實作 sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("無法解析 StringArray 的值: %T %v", value, value)
	}

	if len(bytes) == 0 {
		*a = []string{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value 實作 driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// OrderMetadata 官網訂單在本系統中的附加資料，是本系統唯一可修改的部分
// 標籤去重由前端負責，更新時一律整組覆寫
type OrderMetadata struct {
	OrderID     int         `json:"order_id" gorm:"primaryKey"`
	Remark      string      `json:"remark"`
	Tags        StringArray `json:"tags" gorm:"type:jsonb"`
	IsCompleted bool        `json:"is_completed"`
}

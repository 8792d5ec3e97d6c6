package console

import (
	"fmt"
	"strings"

	"shop_console/models"
)

// MappingView 商品名稱對應頁
type MappingView struct {
	client   *Client
	notifier *Notifier

	mappings []models.ProductMapping
}

// NewMappingView 建立商品對應頁
func NewMappingView(client *Client, notifier *Notifier) *MappingView {
	return &MappingView{client: client, notifier: notifier}
}

// Reload 重新載入全部對應
func (v *MappingView) Reload() error {
	mappings, err := v.client.ListProductMappings()
	if err != nil {
		v.notifier.Push(NotifyError, "載入商品對應失敗："+err.Error())
		return err
	}
	v.mappings = mappings
	return nil
}

// Mappings 目前載入的對應列表
func (v *MappingView) Mappings() []models.ProductMapping {
	return v.mappings
}

// Edit 編輯單筆對應名稱
// 清成空白視為取消編輯，重新載入還原顯示，不送出更新
func (v *MappingView) Edit(mappingID int, mappedName string) error {
	if strings.TrimSpace(mappedName) == "" {
		return v.Reload()
	}

	updated, err := v.client.UpdateProductMapping(mappingID, mappedName)
	if err != nil {
		v.notifier.Push(NotifyError, "更新商品對應失敗："+err.Error())
		return err
	}

	for i := range v.mappings {
		if v.mappings[i].ID == updated.ID {
			v.mappings[i] = updated
			break
		}
	}
	return nil
}

// Reset 把對應名稱還原成通路原始品名，走與編輯相同的更新路徑
func (v *MappingView) Reset(mappingID int) error {
	var original string
	for i := range v.mappings {
		if int(v.mappings[i].ID) == mappingID {
			original = v.mappings[i].OriginalName
			break
		}
	}
	if original == "" {
		return fmt.Errorf("找不到指定的商品對應")
	}

	updated, err := v.client.UpdateProductMapping(mappingID, original)
	if err != nil {
		v.notifier.Push(NotifyError, "還原商品對應失敗："+err.Error())
		return err
	}

	for i := range v.mappings {
		if v.mappings[i].ID == updated.ID {
			v.mappings[i] = updated
			break
		}
	}
	return nil
}

// Sync 觸發商品名稱掃描並重新載入
func (v *MappingView) Sync() error {
	created, err := v.client.SyncProductMappings()
	if err != nil {
		v.notifier.Push(NotifyError, "同步商品名稱失敗："+err.Error())
		return err
	}
	v.notifier.Push(NotifySuccess, fmt.Sprintf("同步完成，新增 %d 筆", created))
	return v.Reload()
}

package message

import (
	"fmt"

	"shop_console/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v5/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// CreateClient 以設定檔中的憑證建立簡訊客戶端
func CreateClient(appConfig *config.AppConfig) (*dysmsapi20170525.Client, error) {
	if appConfig.SMSAccessKeyID == "" || appConfig.SMSAccessKeySecret == "" {
		return nil, fmt.Errorf("未設定簡訊憑證")
	}

	smsConfig := &openapi.Config{
		AccessKeyId:     tea.String(appConfig.SMSAccessKeyID),
		AccessKeySecret: tea.String(appConfig.SMSAccessKeySecret),
	}
	smsConfig.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	return dysmsapi20170525.NewClient(smsConfig)
}

// SendReminderSms 發送待辦提醒簡訊
func SendReminderSms(appConfig *config.AppConfig, phoneNumber string, content string) (*string, error) {
	client, err := CreateClient(appConfig)
	if err != nil {
		return nil, fmt.Errorf("建立簡訊客戶端失敗: %v", err)
	}

	sendSmsRequest := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(phoneNumber),
		SignName:      tea.String("出貨管理平台"),
		TemplateCode:  tea.String("SMS_REMINDER"),
		TemplateParam: tea.String(fmt.Sprintf("{\"content\":\"%s\"}", content)),
	}
	runtime := &util.RuntimeOptions{}

	resp, err := client.SendSmsWithOptions(sendSmsRequest, runtime)
	if err != nil {
		sdkErr := &tea.SDKError{}
		if t, ok := err.(*tea.SDKError); ok {
			sdkErr = t
		} else {
			sdkErr.Message = tea.String(err.Error())
		}
		return nil, fmt.Errorf("發送簡訊失敗: %s", tea.StringValue(sdkErr.Message))
	}

	return util.ToJSONString(resp), nil
}

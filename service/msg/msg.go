package msg

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
	zh_translation "github.com/go-playground/validator/v10/translations/zh"
)

var trans ut.Translator

func initTranslator(language string) error {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("無法取得 gin 的驗證器")
	}

	zhT := zh.New()
	enT := en.New()
	uni := ut.New(enT, enT, zhT)

	trans, ok = uni.GetTranslator(language)
	if !ok {
		return fmt.Errorf("找不到翻譯器 %s", language)
	}

	switch language {
	case "zh":
		return zh_translation.RegisterDefaultTranslations(validate, trans)
	default:
		return en_translation.RegisterDefaultTranslations(validate, trans)
	}
}

// 移除欄位名稱前的結構體名稱，例如 TokenObtainRequest.Password -> Password
func stripStructPrefix(errors map[string]string) map[string]string {
	result := map[string]string{}
	for key, value := range errors {
		result[key[strings.Index(key, ".")+1:]] = value
	}
	return result
}

// BindingErrorMessage 把 gin 綁定錯誤轉成中文訊息，無法翻譯時回傳原始錯誤
func BindingErrorMessage(err error) string {
	if initErr := initTranslator("zh"); initErr != nil {
		return err.Error()
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	translated := stripStructPrefix(validationErrors.Translate(trans))
	parts := make([]string, 0, len(translated))
	for _, message := range translated {
		parts = append(parts, message)
	}
	return strings.Join(parts, "；")
}

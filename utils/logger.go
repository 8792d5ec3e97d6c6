package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Logger 檔案日誌工具，供請求日誌中介層使用
type Logger struct {
	filePath string
}

// NewLogger 建立日誌記錄器，目錄或檔案不存在時自動建立
func NewLogger(logDir, logFileName string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("建立日誌目錄失敗: %v", err)
	}

	fullFilePath := filepath.Join(logDir, logFileName)

	if _, err := os.Stat(fullFilePath); os.IsNotExist(err) {
		file, err := os.Create(fullFilePath)
		if err != nil {
			return nil, fmt.Errorf("建立日誌檔案失敗: %v", err)
		}
		file.Close()
	}

	return &Logger{filePath: fullFilePath}, nil
}

// WriteLog 寫入一筆日誌
func (l *Logger) WriteLog(level string, format string, args ...interface{}) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logContent := fmt.Sprintf("[%s] [%s] %s\n", timestamp, level, fmt.Sprintf(format, args...))

	file, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("開啟日誌檔案失敗: %v", err)
	}
	defer file.Close()

	if _, err := file.WriteString(logContent); err != nil {
		return fmt.Errorf("寫入日誌失敗: %v", err)
	}

	return nil
}

// Info 寫入資訊日誌
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.WriteLog("INFO", format, args...)
}

// Error 寫入錯誤日誌
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.WriteLog("ERROR", format, args...)
}

// Access 寫入存取日誌
func (l *Logger) Access(format string, args ...interface{}) error {
	return l.WriteLog("ACCESS", format, args...)
}

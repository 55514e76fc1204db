package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// AppLogger はログ出力とフロントエンド通知を担当するインターフェース
type AppLogger interface {
	Console(format string, args ...interface{})                // コンソール出力
	Info(format string, args ...interface{})                   // 情報メッセージ出力
	Error(err error, format string, args ...interface{}) error // エラーメッセージ出力
	IsTestMode() bool
}

// appLoggerImpl はAppLoggerの実装
type appLoggerImpl struct {
	mu         sync.Mutex
	ctx        context.Context
	isTestMode bool
	logFile    *os.File
	logDir     string
}

// NewAppLogger は新しいAppLoggerインスタンスを作成
// ctx が nil の場合はフロントエンドへの通知を行わない
func NewAppLogger(ctx context.Context, isTestMode bool, appDataDir string) *appLoggerImpl {
	logger := &appLoggerImpl{
		ctx:        ctx,
		isTestMode: isTestMode,
	}
	if isTestMode || appDataDir == "" {
		return logger
	}

	logger.logDir = filepath.Join(appDataDir, "logs")
	os.MkdirAll(logger.logDir, 0755)

	logPath := filepath.Join(logger.logDir, fmt.Sprintf("app_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return logger
	}
	logger.logFile = logFile
	return logger
}

// writeToLog はログファイルに書き込みを行う
func (l *appLoggerImpl) writeToLog(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		logMessage := fmt.Sprintf("[%s] %s\n", timestamp, message)
		if _, err := l.logFile.WriteString(logMessage); err != nil {
			fmt.Printf("Error writing to log file: %v\n", err)
		}
	}
}

// ログメッセージをコンソールのみに出力
func (l *appLoggerImpl) Console(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if !l.isTestMode {
		fmt.Println(message)
		l.writeToLog(message)
	}
}

// 情報メッセージをコンソールとフロントエンドに出力
func (l *appLoggerImpl) Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if !l.isTestMode {
		fmt.Println(message)
		l.writeToLog(message)
		l.sendLogMessage(message)
	}
}

// エラーメッセージをコンソールとフロントエンドに出力し、エラーを返す
func (l *appLoggerImpl) Error(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	message := fmt.Sprintf(format, args...)
	if !l.isTestMode {
		errorMessage := fmt.Sprintf("%s: %s", message, err.Error())
		fmt.Println(errorMessage)
		l.writeToLog(errorMessage)
		l.sendLogMessage(errorMessage)
	}
	return err
}

// ログメッセージをフロントエンドのステータスバーに通知
func (l *appLoggerImpl) sendLogMessage(message string) {
	l.mu.Lock()
	ctx := l.ctx
	l.mu.Unlock()
	if ctx != nil {
		wailsRuntime.EventsEmit(ctx, "logMessage", message)
	}
}

func (l *appLoggerImpl) IsTestMode() bool {
	return l.isTestMode
}

// Close はログファイルを閉じる
func (l *appLoggerImpl) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// Package base
package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/flyleague-events/internal/interfaces/global"
	"os"
	"sync"
	"time"
)

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

var levelNames = map[logLevel]string{
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
	levelFatal: "FATAL",
}

var levelColors = map[logLevel]*color.Color{
	levelDebug: color.New(color.FgCyan),
	levelInfo:  color.New(color.FgGreen),
	levelWarn:  color.New(color.FgYellow),
	levelError: color.New(color.FgRed),
	levelFatal: color.New(color.FgRed, color.Bold),
}

// Logger 控制台彩色日志, 可选落盘到日志文件
type Logger struct {
	mu       sync.Mutex
	debug    bool
	file     *os.File
	filePath string
}

func NewLogger() *Logger {
	return &Logger{filePath: "latest.log"}
}

func (logger *Logger) Init(debug bool) {
	logger.debug = debug
	file, err := os.OpenFile(logger.filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", logger.filePath, err)
		return
	}
	logger.file = file
}

type loggerShutdownCallback struct {
	logger *Logger
}

func (lc *loggerShutdownCallback) Invoke(_ context.Context) error {
	lc.logger.mu.Lock()
	defer lc.logger.mu.Unlock()
	if lc.logger.file == nil {
		return nil
	}
	return lc.logger.file.Close()
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logger: logger}
}

func (logger *Logger) log(level logLevel, msg string) {
	if level == levelDebug && !logger.debug {
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	levelName := levelColors[level].Sprintf("%-5s", levelNames[level])
	_, _ = fmt.Fprintf(color.Output, "[%s] [%s] %s\n", timestamp, levelName, msg)
	if logger.file != nil {
		_, _ = fmt.Fprintf(logger.file, "[%s] [%-5s] %s\n", timestamp, levelNames[level], msg)
	}
}

func (logger *Logger) Debug(msg string, v ...interface{}) { logger.log(levelDebug, fmt.Sprint(append([]interface{}{msg}, v...)...)) }

func (logger *Logger) DebugF(msg string, v ...interface{}) { logger.log(levelDebug, fmt.Sprintf(msg, v...)) }

func (logger *Logger) Info(msg string, v ...interface{}) { logger.log(levelInfo, fmt.Sprint(append([]interface{}{msg}, v...)...)) }

func (logger *Logger) InfoF(msg string, v ...interface{}) { logger.log(levelInfo, fmt.Sprintf(msg, v...)) }

func (logger *Logger) Warn(msg string, v ...interface{}) { logger.log(levelWarn, fmt.Sprint(append([]interface{}{msg}, v...)...)) }

func (logger *Logger) WarnF(msg string, v ...interface{}) { logger.log(levelWarn, fmt.Sprintf(msg, v...)) }

func (logger *Logger) Error(msg string, v ...interface{}) { logger.log(levelError, fmt.Sprint(append([]interface{}{msg}, v...)...)) }

func (logger *Logger) ErrorF(msg string, v ...interface{}) { logger.log(levelError, fmt.Sprintf(msg, v...)) }

func (logger *Logger) Fatal(msg string, v ...interface{}) { logger.log(levelFatal, fmt.Sprint(append([]interface{}{msg}, v...)...)) }

func (logger *Logger) FatalF(msg string, v ...interface{}) { logger.log(levelFatal, fmt.Sprintf(msg, v...)) }

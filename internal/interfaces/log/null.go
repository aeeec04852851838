// Package log
package log

import (
	"context"
	"github.com/half-nothing/flyleague-events/internal/interfaces/global"
)

type nullShutdownCallback struct{}

func (nc *nullShutdownCallback) Invoke(_ context.Context) error { return nil }

// NullLogger 丢弃全部日志, 用于测试
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (logger *NullLogger) Init(_ bool)                          {}
func (logger *NullLogger) ShutdownCallback() global.Callable    { return &nullShutdownCallback{} }
func (logger *NullLogger) Debug(_ string, _ ...interface{})     {}
func (logger *NullLogger) DebugF(_ string, _ ...interface{})    {}
func (logger *NullLogger) Info(_ string, _ ...interface{})      {}
func (logger *NullLogger) InfoF(_ string, _ ...interface{})     {}
func (logger *NullLogger) Warn(_ string, _ ...interface{})      {}
func (logger *NullLogger) WarnF(_ string, _ ...interface{})     {}
func (logger *NullLogger) Error(_ string, _ ...interface{})     {}
func (logger *NullLogger) ErrorF(_ string, _ ...interface{})    {}
func (logger *NullLogger) Fatal(_ string, _ ...interface{})     {}
func (logger *NullLogger) FatalF(_ string, _ ...interface{})    {}

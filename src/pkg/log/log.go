package log

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log wraps logrus with the context/scope/meta fields every layer reports.
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"INFO":  1,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	logger = New(v.GetString("app.name"), v.GetString("log.level"))
}

// GetLogger return singleton
func GetLogger() Log {
	return logger
}

// New builds a standalone logger, used by InitLogger and by tests.
func New(appName, levelStr string) Log {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	lvl, ok := mapOfLogLevel[levelStr]
	if !ok {
		lvl = 1
	}
	return Log{
		AppName:  appName,
		LogLevel: lvl,
		Logger:   l,
	}
}

// Discard returns a logger that writes nowhere.
func Discard() Log {
	l := New("test", "ERROR")
	l.Logger.SetOutput(io.Discard)
	return l
}

// -----------------------------
// Info
func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"at":      fmt.Sprintf("%s:%d", file, line),
	}).Info(message)
}

// -----------------------------
// Error
func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 2 {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	_, file2, line2, _ := runtime.Caller(2)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file1":   file,
		"line1":   line,
		"file2":   file2,
		"line2":   line2,
	}).Error(message)
}

// -----------------------------
// Slow
func (l Log) Slow(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"at":      fmt.Sprintf("%s:%d", file, line),
	}).Warn("[SLOW] " + message)
}

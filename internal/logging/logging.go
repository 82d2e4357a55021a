// Package logging provides structured logging with zap.
//
// The terminal UI owns stdout, so log entries go to a rotating file through
// lumberjack. With no file configured every call is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu           sync.RWMutex
	globalLogger = zap.NewNop()
	globalLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	closer       func() error
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	Path       string // log file; empty disables logging
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ValidLevel reports whether s names a zap level.
func ValidLevel(s string) bool {
	var level zapcore.Level
	return level.UnmarshalText([]byte(s)) == nil
}

// New builds a logger for cfg along with a function releasing its file.
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, func() error, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	atomic := zap.NewAtomicLevelAt(level)

	if cfg.Path == "" {
		return zap.NewNop(), atomic, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, atomic, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(rotator), atomic)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, atomic, rotator.Close, nil
}

// Init replaces the global logger.
func Init(cfg Config) error {
	logger, level, closeFn, err := New(cfg)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = globalLogger.Sync()
		_ = closer()
	}
	globalLogger = logger
	globalLevel = level
	closer = closeFn
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// SetLevel changes the global log level at runtime.
func SetLevel(level string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	globalLevel.SetLevel(l)
}

// Sync flushes buffered entries and closes the log file.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	err := globalLogger.Sync()
	if closer != nil {
		if cerr := closer(); err == nil {
			err = cerr
		}
		closer = nil
	}
	globalLogger = zap.NewNop()
	return err
}

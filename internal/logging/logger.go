package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MUSICCAST_LOG_LEVEL"

// ParseLevel maps a level name to a zap level.
// Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified level.
// If level is empty, it checks MUSICCAST_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		SetLogger(zap.NewNop())
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(built)
	return nil
}

// InitializeFromEnv initializes the logger from the MUSICCAST_LOG_LEVEL
// environment variable. CLI commands use this so they stay silent by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	// Fallback to silent logger if not initialized
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogRequest logs a completed receiver request
func LogRequest(url string, statusCode int, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
	}

	if statusCode != 200 {
		Warn("Receiver request returned no data", fields...)
		return
	}
	Debug("Receiver request", fields...)
}

// LogTransportError logs a request that never got an HTTP response
func LogTransportError(url string, err error) {
	Warn("Receiver request failed",
		zap.String("url", url),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = GetLogger().Sync()
}

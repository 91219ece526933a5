// Package logx provides structured logging for the marketplace API.
package logx

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger to provide a consistent interface.
type Logger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
	scope string
}

var (
	globalLogger *Logger
	scopeMu      sync.Mutex
	scopes       = map[string]*Logger{}
)

func init() {
	globalLogger = build("info", "console", "")
}

// IsLocalDev checks if the environment is local development.
func IsLocalDev(appEnv string) bool {
	return appEnv == "local" || appEnv == "dev" || appEnv == "development"
}

func baseConfig() zap.Config {
	config := zap.NewProductionConfig()
	config.Development = false
	config.DisableStacktrace = false
	config.Sampling = nil
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	config.Encoding = "console"
	return config
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func build(level, format, scope string) *Logger {
	config := baseConfig()
	switch strings.ToLower(format) {
	case "json":
		config.Encoding = "json"
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		config.Encoding = "console"
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	zl, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	if scope != "" {
		zl = zl.Named(scope)
	}
	return &Logger{zap: zl, sugar: zl.Sugar(), scope: scope}
}

// Init configures the global logger and rebuilds every scope logger.
func Init(level, format string) {
	globalLogger = build(level, format, "")
	scopeMu.Lock()
	for name := range scopes {
		scopes[name].swap(build(level, format, name))
	}
	scopeMu.Unlock()
}

// GetScope returns a named logger for a subsystem. Repeated calls with the
// same name return the same instance, and Init reconfigures it in place.
func GetScope(name string) *Logger {
	scopeMu.Lock()
	defer scopeMu.Unlock()
	if l, ok := scopes[name]; ok {
		return l
	}
	level := "info"
	if IsLocalDev(os.Getenv("APP_ENV")) {
		level = "debug"
	}
	l := build(level, "console", name)
	scopes[name] = l
	return l
}

// L returns the global sugar logger.
func L() *zap.SugaredLogger {
	return globalLogger.sugar
}

// Global returns the global logger instance.
func Global() *Logger {
	return globalLogger
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) swap(n *Logger) {
	l.zap = n.zap
	l.sugar = n.sugar
}

// Sugar returns the sugar logger for key-value style logging.
func (l *Logger) Sugar() *zap.SugaredLogger { return l.sugar }

// Zap returns the underlying zap logger for structured logging.
func (l *Logger) Zap() *zap.Logger { return l.zap }

// Close flushes any buffered log entries.
func (l *Logger) Close() error {
	if l.zap != nil {
		return l.zap.Sync()
	}
	return nil
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Package logger is a thin zap wrapper shared by the service and the CLI.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels understood by NewLogger.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Field is a structured log attribute.
type Field = zapcore.Field

// LoggerI is the logging surface used across pushql.
type LoggerI interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Panic(msg string, fields ...Field)
	With(fields ...Field) LoggerI
	Sync() error
}

type loggerImpl struct {
	zap *zap.Logger
}

// NewLogger builds a JSON logger writing to stderr, named after namespace.
// Unknown levels fall back to info.
func NewLogger(namespace, level string) LoggerI {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(parseLevel(level)),
	)
	return &loggerImpl{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(namespace)}
}

// NewNop returns a logger that discards everything.
func NewNop() LoggerI {
	return &loggerImpl{zap: zap.NewNop()}
}

// FromZap wraps an existing zap logger, mostly for tests using zaptest/observer.
func FromZap(l *zap.Logger) LoggerI {
	return &loggerImpl{zap: l}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn, "warning":
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ValidLevel reports whether level is one NewLogger understands.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case LevelDebug, LevelInfo, LevelWarn, "warning", LevelError:
		return true
	}
	return false
}

func (l *loggerImpl) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }
func (l *loggerImpl) Panic(msg string, fields ...Field) { l.zap.Panic(msg, fields...) }
func (l *loggerImpl) Sync() error                       { return l.zap.Sync() }

func (l *loggerImpl) With(fields ...Field) LoggerI {
	return &loggerImpl{zap: l.zap.With(fields...)}
}

// Cleanup flushes buffered entries.
func Cleanup(l LoggerI) error {
	return l.Sync()
}

// Field constructors.
func Any(key string, val any) Field        { return zap.Any(key, val) }
func String(key, val string) Field         { return zap.String(key, val) }
func Int(key string, val int) Field        { return zap.Int(key, val) }
func Strings(key string, v []string) Field { return zap.Strings(key, v) }
func Error(err error) Field                { return zap.Error(err) }

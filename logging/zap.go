package logging

import (
	"context"
	"maps"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.Logger to the Logger interface so hosts that
// already run zap can feed the library without a second logging stack
type ZapLogger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
}

// NewZapLogger creates a zap-backed logger writing console output to stderr,
// honoring MUVIS_LOG_LEVEL for the minimum level
func NewZapLogger() *ZapLogger {
	level := zap.NewAtomicLevelAt(toZapLevel(LevelFromEnv()))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &ZapLogger{
		zl:    zap.New(core),
		level: level,
	}
}

// WrapZap adapts an existing zap.Logger; the adapter gates entries on its own
// level, the wrapped core may filter further
func WrapZap(zl *zap.Logger) *ZapLogger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &ZapLogger{
		zl:    zl,
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// zapFields flattens Fields maps into zap fields with deterministic key order
func zapFields(fields ...Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	merged := make(Fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zf := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, merged[k]))
	}
	return zf
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	if !z.level.Enabled(zapcore.DebugLevel) {
		return
	}
	z.zl.Debug(msg, zapFields(fields...)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	if !z.level.Enabled(zapcore.InfoLevel) {
		return
	}
	z.zl.Info(msg, zapFields(fields...)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	if !z.level.Enabled(zapcore.WarnLevel) {
		return
	}
	z.zl.Warn(msg, zapFields(fields...)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	if !z.level.Enabled(zapcore.ErrorLevel) {
		return
	}
	zf := zapFields(fields...)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	z.zl.Error(msg, zf...)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	zf := zapFields(fields...)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	z.zl.Fatal(msg, zf...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		zl:    z.zl.With(zapFields(fields)...),
		level: z.level,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered log entries; call before process exit
func (z *ZapLogger) Sync() error {
	return z.zl.Sync()
}

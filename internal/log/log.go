package log

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// initLogger builds the global console logger writing to stderr.
// stdout is reserved for generated markup (--stdout).
func initLogger() {
	loggerOnce.Do(func() {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		logger = zap.New(core).Sugar()
	})
}

// Use replaces the global logger. Tests use it with zaptest/observer cores.
func Use(l *zap.Logger) {
	initLogger()
	logger = l.Sugar()
}

func SetLevel(l Level) {
	switch l {
	case LevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LevelError:
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// ParseLevel maps a case-sensitive level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelDebug, LevelError:
		return Level(s)
	default:
		return LevelInfo
	}
}

func Debug(msg string, kv ...any) {
	initLogger()
	logger.Debugw(msg, normalizeKVs(kv)...)
}

func Info(msg string, kv ...any) {
	initLogger()
	logger.Infow(msg, normalizeKVs(kv)...)
}

func Error(msg string, err error, kv ...any) {
	initLogger()
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	logger.Errorw(msg, normalizeKVs(extended)...)
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	initLogger()
	_ = logger.Sync()
}

// normalizeKVs stringifies non-string keys and drops a trailing odd value.
func normalizeKVs(kv []any) []any {
	out := make([]any, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		out = append(out, key, kv[i+1])
	}
	return out
}

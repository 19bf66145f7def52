package logger

import (
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Field represents a typed key-value pair for structured logging
type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// FieldType defines the type of a log field for type safety
type FieldType int

const (
	StringType FieldType = iota
	IntType
	Uint64Type
	BoolType
	ErrorType
	DurationType
	AnyType
	StringsType
)

// Logger defines the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Syncer is implemented by loggers that buffer output
type Syncer interface {
	Sync() error
}

func String(key, value string) Field {
	return Field{Key: key, Type: StringType, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Type: IntType, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Type: Uint64Type, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Type: BoolType, Value: value}
}

func Err(err error) Field {
	return Field{Key: "error", Type: ErrorType, Value: err}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Type: DurationType, Value: value}
}

func Any(key string, value any) Field {
	return Field{Key: key, Type: AnyType, Value: value}
}

func Strings(key string, value []string) Field {
	return Field{Key: key, Type: StringsType, Value: value}
}

// global holds the process logger; swapped atomically so tests can replace it
var global atomic.Pointer[holder]

type holder struct {
	Logger
}

func init() {
	SetGlobalLogger(defaultFromEnv())
}

// defaultFromEnv picks the global logger from FASTFLECT_LOGGER (zap, noop)
func defaultFromEnv() Logger {
	switch strings.ToLower(os.Getenv("FASTFLECT_LOGGER")) {
	case "noop", "none", "off":
		return NewNoOp()
	default:
		l, err := New(Options{
			Level:  os.Getenv("FASTFLECT_LOG_LEVEL"),
			Format: os.Getenv("FASTFLECT_LOG_FORMAT"),
			File:   os.Getenv("FASTFLECT_LOG_FILE"),
		})
		if err != nil {
			return NewNoOp()
		}
		return l
	}
}

// SetGlobalLogger replaces the process logger; nil installs a no-op logger
func SetGlobalLogger(l Logger) {
	if l == nil {
		l = NewNoOp()
	}
	global.Store(&holder{l})
}

// Log returns the process logger
func Log() Logger {
	return global.Load().Logger
}

func Debug(msg string, fields ...Field) {
	Log().Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	Log().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	Log().Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	Log().Error(msg, fields...)
}

// Sync flushes the process logger if it buffers
func Sync() error {
	if s, ok := Log().(Syncer); ok {
		return s.Sync()
	}
	return nil
}

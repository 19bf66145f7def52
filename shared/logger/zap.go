package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the zap-backed logger
type Options struct {
	// Level is debug, info, warn or error (default info)
	Level string
	// Format is console, json or auto (console when stderr is a terminal)
	Format string
	// File enables an additional rotated JSON log file when set
	File string
	// MaxSizeMB, MaxBackups and MaxAgeDays tune rotation of File
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// zapLogger implements Logger interface using zap
type zapLogger struct {
	logger *zap.Logger
}

// New creates a zap-based logger writing to stderr and, optionally, a rotated file
func New(opts Options) (Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var consoleEncoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "json":
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		consoleEncoder = newConsoleEncoder()
	case "", "auto":
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			consoleEncoder = newConsoleEncoder()
		} else {
			consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if opts.File != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10), // megabytes
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 7), // days
			Compress:   true,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileSyncer, level))
	}

	return NewZap(zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(2), // zap call -> zapLogger method -> package wrapper
		zap.AddStacktrace(zap.ErrorLevel))), nil
}

// NewZap wraps an existing zap logger
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{logger: l}
}

func newConsoleEncoder() zapcore.Encoder {
	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(consoleConfig)
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return l, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return l, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// convertFields converts our Field types to zap.Field types
func convertFields(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = convertField(f)
	}
	return zapFields
}

func convertField(f Field) zap.Field {
	switch f.Type {
	case StringType:
		return zap.String(f.Key, f.Value.(string))
	case IntType:
		return zap.Int(f.Key, f.Value.(int))
	case Uint64Type:
		return zap.Uint64(f.Key, f.Value.(uint64))
	case BoolType:
		return zap.Bool(f.Key, f.Value.(bool))
	case ErrorType:
		if err, ok := f.Value.(error); ok {
			return zap.NamedError(f.Key, err)
		}
		return zap.Skip()
	case DurationType:
		return zap.Duration(f.Key, f.Value.(time.Duration))
	case StringsType:
		return zap.Strings(f.Key, f.Value.([]string))
	default:
		return zap.Any(f.Key, f.Value)
	}
}

func (z *zapLogger) Debug(msg string, fields ...Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *zapLogger) Sync() error {
	return z.logger.Sync()
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"fastflect/shared/logger"
)

// Config holds the settings of the fastflect tooling
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Bench   BenchConfig   `yaml:"bench"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects and tunes the process logger
type LogConfig struct {
	Logger     string `yaml:"logger" validate:"oneof=zap noop"`
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" validate:"oneof=auto console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

// BenchConfig drives the bench command
type BenchConfig struct {
	Iterations int `yaml:"iterations" validate:"gte=1"`
	Goroutines int `yaml:"goroutines" validate:"gte=1,lte=1024"`
	// Visibility is public (exported members only) or any
	Visibility string `yaml:"visibility" validate:"oneof=public any"`
}

// MetricsConfig names the exported Prometheus metrics
type MetricsConfig struct {
	Namespace string `yaml:"namespace" validate:"required"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			Logger: "zap",
			Level:  "info",
			Format: "auto",
		},
		Bench: BenchConfig{
			Iterations: 1_000_000,
			Goroutines: 1,
			Visibility: "any",
		},
		Metrics: MetricsConfig{
			Namespace: "fastflect",
		},
	}
}

// Load reads path (when non-empty) over the defaults, applies FASTFLECT_*
// environment overrides and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode rejects unknown keys so typos don't silently fall back to defaults
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overrides settings from the environment
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	stringVars := map[string]*string{
		"FASTFLECT_LOGGER":            &cfg.Log.Logger,
		"FASTFLECT_LOG_LEVEL":         &cfg.Log.Level,
		"FASTFLECT_LOG_FORMAT":        &cfg.Log.Format,
		"FASTFLECT_LOG_FILE":          &cfg.Log.File,
		"FASTFLECT_BENCH_VISIBILITY":  &cfg.Bench.Visibility,
		"FASTFLECT_METRICS_NAMESPACE": &cfg.Metrics.Namespace,
	}
	for key, dst := range stringVars {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"FASTFLECT_BENCH_ITERATIONS": &cfg.Bench.Iterations,
		"FASTFLECT_BENCH_GOROUTINES": &cfg.Bench.Goroutines,
	}
	for key, dst := range intVars {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}

	return nil
}

var validate = validator.New()

// Validate checks every field against its constraints
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NewLogger builds the logger described by the log settings
func (c LogConfig) NewLogger() (logger.Logger, error) {
	if c.Logger == "noop" {
		return logger.NewNoOp(), nil
	}
	return logger.New(logger.Options{
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	})
}

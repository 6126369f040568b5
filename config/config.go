// Package config carries the module's file-loadable settings.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Parser  ParserConfig  `yaml:"parser"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, stacktraces
}

// ParserConfig carries markup parsing defaults.
type ParserConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{Logging: LoggingConfig{Level: "info"}}
}

// Load reads a yaml config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Build constructs the zap logger described by the config.
func (c LoggingConfig) Build() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	switch c.Level {
	case "", "info":
		zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "debug":
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn", "warning":
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		zc.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return nil, fmt.Errorf("config: unknown log level %q", c.Level)
	}
	return zc.Build()
}

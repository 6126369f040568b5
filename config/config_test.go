package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault(t *testing.T) {
	want := &Config{Logging: LoggingConfig{Level: "info"}}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
logging:
  level: debug
  development: true
parser:
  base_url: https://example.com/
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	want := &Config{
		Logging: LoggingConfig{Level: "debug", Development: true},
		Parser:  ParserConfig{BaseURL: "https://example.com/"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser:\n  base_url: /x\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", got.Logging.Level)
	assert.Equal(t, "/x", got.Parser.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t bogus"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoggingBuildLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"info", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger, err := LoggingConfig{Level: tt.level}.Build()
			require.NoError(t, err)
			defer logger.Sync()
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want != zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestLoggingBuildUnknownLevel(t *testing.T) {
	_, err := LoggingConfig{Level: "loud"}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

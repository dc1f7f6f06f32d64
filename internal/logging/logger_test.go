package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  WARN ", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studio.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = path

	logger, closer, err := New(cfg)
	require.NoError(t, err)

	logger.Info().Str("window_id", "w1").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"window_id":"w1"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestWithSessionID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = path
	logger, closer, err := New(cfg)
	require.NoError(t, err)

	ctx := WithSessionID(WithContext(context.Background(), logger), "s-42")
	FromContext(ctx).Info().Msg("tracking")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"s-42"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	// Disabled logger must not panic.
	logger.Info().Msg("dropped")
}

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stdx/internal/logging"
)

func TestNew_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "info", Format: "json"}, &buf)
	logger.Info("decoded document", slog.String("format", "yaml"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be valid JSON")
	require.Equal(t, "decoded document", entry["msg"])
	require.Equal(t, "yaml", entry["format"])
	require.Equal(t, "INFO", entry["level"])
}

func TestNew_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "debug"}, &buf)
	logger.Debug("walking", slog.String("path", "a.b"))

	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "path=a.b")
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "error"}, &buf)
	logger.Warn("ignored")
	require.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, logging.ParseLevel(tc.in))
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	require.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

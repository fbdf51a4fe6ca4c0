package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/wordcards/internal/config"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := logger.ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("shown", "card_id", "abc")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["card_id"])
	assert.Same(t, l, slog.Default())
}

func TestSetupWithWriter_InvalidLevel(t *testing.T) {
	_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "loud"}, &logger.TestLogBuffer{})
	assert.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	fallback, _ := logger.NewTestLogger()
	scoped, _ := logger.NewTestLogger()

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	ctx := logger.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, scoped, logger.FromContext(ctx))

	assert.NotNil(t, logger.FromContextOrDefault(context.Background(), nil))
}

package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext_FallsBackToGlobal checks the global logger is returned for a bare context.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithName_UsesContextLogger ensures named loggers keep the sink of the context logger.
func TestWithName_UsesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), NewTo(zapcore.AddSync(&buf), zap.DebugLevel))
	ctx = WithName(ctx, "blversion")
	ctx = WithKV(ctx, "root", "/src")

	DebugKV(ctx, "resolved header")

	out := buf.String()
	require.Contains(t, out, "blversion")
	require.Contains(t, out, "resolved header")
	require.Contains(t, out, "/src")
}

// TestWithLevel_OverridesCoreLevel checks the option both raises and lowers verbosity.
func TestWithLevel_OverridesCoreLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := NewTo(zapcore.AddSync(&buf), zap.InfoLevel)

	base.Debug("hidden")
	require.Empty(t, buf.String())

	base.WithOptions(WithLevel(zapcore.DebugLevel)).Debug("shown")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	base.WithOptions(WithLevel(zapcore.ErrorLevel)).Warn("muted")
	require.Empty(t, buf.String())
}

// TestWithLevel_ReportsOverride checks Logger.Level follows the override, including atomic changes.
func TestWithLevel_ReportsOverride(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := NewTo(zapcore.AddSync(&buf), zap.InfoLevel)
	require.Equal(t, zapcore.InfoLevel, base.Level())

	atomic := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	scoped := base.WithOptions(WithLevel(atomic)).With("root", "/src")
	require.Equal(t, zapcore.ErrorLevel, scoped.Level())

	scoped.Info("muted")
	require.Empty(t, buf.String())

	atomic.SetLevel(zapcore.DebugLevel)
	require.Equal(t, zapcore.DebugLevel, scoped.Level())

	scoped.Debug("shown")
	require.Contains(t, buf.String(), "shown")
}

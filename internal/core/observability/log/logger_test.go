package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		" fatal ": LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelDebug)

	l.With(String("component", "canvas")).Info("tick",
		Int("balls", 3),
		Uint64("tick", 7),
		Hex("fingerprint", 0xbeef),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "tick", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "canvas", ctx["component"])
	assert.EqualValues(t, 3, ctx["balls"])
	assert.EqualValues(t, 7, ctx["tick"])
	assert.Equal(t, "000000000000beef", ctx["fingerprint"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), LevelWarn)

	l.Log(LevelInfo, "dropped")
	l.Log(LevelError, "kept")
	assert.Equal(t, 1, logs.Len())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Log(LevelDebug, "kept too")
	assert.Equal(t, 2, logs.Len())
}

func TestNewWithFormat(t *testing.T) {
	_, err := NewWithFormat(LevelInfo, "console")
	assert.NoError(t, err)
	_, err = NewWithFormat(LevelInfo, "xml")
	assert.Error(t, err)
}

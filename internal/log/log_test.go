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

func TestErrorPrependsErr(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))

	Error("write failed", errors.New("disk full"), "dest", "out.xml")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "write failed", entries[0].Message)
	assert.Equal(t, "out.xml", fields["dest"])
	assert.Contains(t, fields, "err")
}

func TestNormalizeKVs(t *testing.T) {
	got := normalizeKVs([]any{"a", 1, 2, "b", "dangling"})
	assert.Equal(t, []any{"a", 1, "2", "b"}, got)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

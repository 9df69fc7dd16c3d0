package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapObserver_LevelsBySuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewZapObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{Model: "llama3.2", Attempts: 1, Success: true})
	obs.OnCallComplete(CallEvent{Model: "llama3.2", Attempts: 2, ErrorCode: "TIMEOUT"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "TIMEOUT", entries[1].ContextMap()["error_code"])
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core)).With(zap.String("component", "variant"))

	log.Info("variant created", zap.String("variant_id", "v1"))
	log.Warn("cache unavailable")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "variant created", entries[0].Message)
	assert.Equal(t, map[string]any{"component": "variant", "variant_id": "v1"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNewZapLoggerDoesNotPanic(t *testing.T) {
	for _, cfg := range []*ZapLoggerConfig{
		{Encoding: "json", Level: "info"},
		{IsDevelopment: true, Encoding: "console", Level: "debug", DisableCaller: true, DisableStacktrace: true},
		{Encoding: "json", Level: "not-a-level"},
	} {
		assert.NotPanics(t, func() {
			log := NewZapLogger(cfg)
			log.Debug("debug")
		})
	}
	assert.NotPanics(t, func() { NewNop().Error("dropped") })
}

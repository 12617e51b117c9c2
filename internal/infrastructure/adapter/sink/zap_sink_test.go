package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

func observedZapSink() (*ZapSink, *observer.ObservedLogs) {
	zapCore, logs := observer.New(zapcore.DebugLevel)
	return NewZapSinkFromLogger(zap.New(zapCore)), logs
}

func TestZapSinkLevelMapping(t *testing.T) {
	testCases := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.LevelDebug, zapcore.DebugLevel},
		{core.LevelDev, zapcore.DebugLevel},
		{core.LevelInfo, zapcore.InfoLevel},
		{core.LevelUserAction, zapcore.InfoLevel},
		{core.LevelWarn, zapcore.WarnLevel},
		{core.LevelError, zapcore.ErrorLevel},
		{core.LevelBug, zapcore.ErrorLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			s, observed := observedZapSink()

			s.Log(tc.level, "mapped")

			entries := observed.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tc.want, entries[0].Level)
				assert.Equal(t, "mapped", entries[0].Message)
			}
		})
	}
}

func TestZapSinkCarriesFacadeLevelAsField(t *testing.T) {
	s, observed := observedZapSink()

	s.Log(core.LevelUserAction, "tapped button")

	entries := observed.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "user_action", fields["level_tag"])
	}
}

func TestZapSinkFlush(t *testing.T) {
	s, _ := observedZapSink()
	assert.NoError(t, s.Flush())
}

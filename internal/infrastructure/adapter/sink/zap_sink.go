package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// ZapSink bridges the facade to a zap logger, for deployments that want
// structured output or zap's own sink tree behind the facade. Level
// filtering stays in the facade, so the underlying zap logger is built wide
// open at debug.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a zap-backed sink
func NewZapSink(isProduction bool) *ZapSink {
	// Configure zap logger
	var cfg zap.Config

	if isProduction {
		// In production, use a JSON encoder for structured logging
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// In development, use a console encoder for easier reading
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize zap sink: " + err.Error())
	}

	return &ZapSink{logger: zapLogger}
}

// NewZapSinkFromLogger wraps an existing zap logger. Used by tests with an
// observed core.
func NewZapSinkFromLogger(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Log forwards the message to zap at the nearest zap level. The facade's
// level travels along as a field since zap has no user-action, bug or dev
// levels of its own.
func (s *ZapSink) Log(level core.Level, message string) {
	field := zap.String("level_tag", level.String())
	switch level {
	case core.LevelDebug, core.LevelDev:
		s.logger.Debug(message, field)
	case core.LevelInfo, core.LevelUserAction:
		s.logger.Info(message, field)
	case core.LevelWarn:
		s.logger.Warn(message, field)
	case core.LevelError, core.LevelBug:
		s.logger.Error(message, field)
	default:
		s.logger.Info(message, field)
	}
}

// Flush ensures all buffered logs are written
func (s *ZapSink) Flush() error {
	return s.logger.Sync()
}

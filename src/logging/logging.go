package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Unknown levels fall back to info rather
// than failing startup.
func New(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.MessageKey = "message"

	if parsed, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(parsed)
	}

	return config.Build()
}

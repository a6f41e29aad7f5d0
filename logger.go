package shell

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the production logger of a Service at the given level
// (e.g. "debug" or "info"). An empty level means info.
func NewLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		err := lvl.UnmarshalText([]byte(level))
		if err != nil {
			return nil, errors.Wrap(err, "invalid log level")
		}
	}

	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(lvl)
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := conf.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return logger, nil
}

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger. In production it emits JSON; in
// development it emits a colored console format. Output always goes to
// stderr so it never interleaves with the interactive menus on stdout.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// The shell owns stdout; keep development logs quiet unless
		// POS_DEBUG is set.
		if os.Getenv("POS_DEBUG") == "" {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
	}

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// NewWithDefaults creates a logger from the POS_ENV environment variable.
func NewWithDefaults() *zap.Logger {
	env := os.Getenv("POS_ENV")
	if env == "" {
		env = "development"
	}

	logger, err := New(env)
	if err != nil {
		// Fallback to basic logger
		logger, _ = zap.NewProduction()
	}

	return logger
}

package logger

import (
	"go.uber.org/zap"
)

// New builds a production logger at the given verbosity ("debug", "info",
// "warn", ...).
func New(verbosity string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(verbosity)
	if err != nil {
		return nil, err
	}
	config.Level = level
	return config.Build()
}

// NewCLI builds a console logger for the interactive tools: human-readable
// encoding, no JSON, no stacktraces below error level.
func NewCLI(verbosity string) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	level, err := zap.ParseAtomicLevel(verbosity)
	if err != nil {
		return nil, err
	}
	config.Level = level
	config.DisableStacktrace = true
	return config.Build()
}

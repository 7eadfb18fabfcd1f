// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hexkit/hexkit/framework/config"
)

// New constructs the process zap logger: JSON output in production,
// console output elsewhere, level taken from LOG_LEVEL. The app name and
// environment ride along on every entry.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Log.Level, err)
	}

	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger.With(
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	), nil
}

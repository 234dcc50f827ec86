// Package logging builds the zap loggers used by the skyline CLI.
// Logs go to stderr only; stdout is reserved for the skyline report.
// Each subsystem logs through a named category logger.
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"skyline/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryLoader Category = "loader" // Input path resolution and parsing
	CategorySolver Category = "solver" // Divide-and-conquer solver
	CategoryReport Category = "report" // Report output
)

// New builds a logger from the logging config. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if strings.EqualFold(cfg.Format, "console") {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(levelFor(cfg, verbose))
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewWithSink builds the same logger as New but writes to ws. Useful when
// the caller owns the output stream.
func NewWithSink(cfg config.LoggingConfig, verbose bool, ws zapcore.WriteSyncer) *zap.Logger {
	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(levelFor(cfg, verbose)))
	return zap.New(core)
}

func levelFor(cfg config.LoggingConfig, verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return ParseLevel(cfg.Level)
}

// ParseLevel converts a config level string to a zap level.
// Defaults to info if the level string is not recognized.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the category logger derived from logger.
// A nil logger yields a no-op logger.
func Get(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}

// WithRunID tags every entry of logger with a fresh run identifier and
// returns the tagged logger along with the id.
func WithRunID(logger *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	if logger == nil {
		return zap.NewNop(), id
	}
	return logger.With(zap.String("run_id", id)), id
}

package config

import (
	"fmt"
	"slices"
	"strings"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // json, console
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging encodings.
var ValidLogFormats = []string{"json", "console"}

// Validate checks level and format.
func (c *LoggingConfig) Validate() error {
	if !slices.Contains(ValidLogLevels, strings.ToLower(c.Level)) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, strings.ToLower(c.Format)) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Format, ValidLogFormats)
	}
	return nil
}

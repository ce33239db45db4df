package config

import "fmt"

// LogConfig controls the verbosity of the JSON logger.
type LogConfig struct {
	Level string `koanf:"level"`
}

// Validate checks that the level is one the logger understands. An empty
// level falls back to info.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level: %q", c.Level)
}

package config

import (
	"fmt"
	"time"
)

// ShutdownConfig bounds how long the HTTP and pprof servers may take to
// drain in-flight requests on termination.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}

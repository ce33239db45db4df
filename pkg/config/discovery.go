package config

import (
	"fmt"
	"strings"
)

// DiscoveryConfig holds the proximity search settings.
type DiscoveryConfig struct {
	RadiusMeters float64 `koanf:"radiusmeters"`
}

// String returns a string representation of the DiscoveryConfig.
func (c *DiscoveryConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Discovery ---\n")
	b.WriteString(fmt.Sprintf("  radiusMeters: %.0f\n", c.RadiusMeters))
	return b.String()
}

func (c *DiscoveryConfig) Validate() error {
	if c.RadiusMeters <= 0 {
		return fmt.Errorf("discovery radius must be greater than zero")
	}
	return nil
}

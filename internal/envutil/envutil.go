// Package envutil provides helper functions for brand-prefixed environment
// variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/trendradar/radarctl/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name by combining
// the brand prefix with the given suffix.
// Example: HostEnvKey("PYTHON") returns "RADAR_PYTHON".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
// A set-but-blank variable reads as empty, same as an unset one.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

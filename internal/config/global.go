// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.radarctl/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"

	"github.com/trendradar/radarctl/internal/constants"
	"github.com/trendradar/radarctl/internal/envutil"
	"github.com/trendradar/radarctl/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.radarctl/config.yaml global configuration.
// It stores machine-wide defaults that individual invocations may override.
type GlobalConfig struct {
	Version    int    `yaml:"version"`
	ProjectDir string `yaml:"project_dir,omitempty"`
	Python     string `yaml:"python,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// Respects brand-specific CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixConfigPath); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := envutil.GetHostEnv(constants.HostSuffixConfigHome); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// UpdateGlobalConfig loads the global config, applies mutate, and saves it back.
// A missing config file starts from defaults rather than failing.
func UpdateGlobalConfig(mutate func(*GlobalConfig)) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		cfg = DefaultGlobalConfig()
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	mutate(&cfg)
	return SaveGlobalConfig(path, cfg)
}

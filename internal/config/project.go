// Where: internal/config/project.go
// What: Per-project configuration (radarctl.yml).
// Why: Let a project pin its interpreter, credentials file, and compose service.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfigFile is the file name looked up inside the project directory.
const ProjectConfigFile = "radarctl.yml"

// ProjectConfig models the optional radarctl.yml in the project directory.
// Every field is optional; the zero value means "use the built-in default".
type ProjectConfig struct {
	Version     int               `yaml:"version,omitempty"`
	Launcher    LauncherConfig    `yaml:"launcher,omitempty"`
	Credentials CredentialsConfig `yaml:"credentials,omitempty"`
	Check       CheckConfig       `yaml:"check,omitempty"`
	Compose     ComposeConfig     `yaml:"compose,omitempty"`
}

// LauncherConfig overrides how the aggregator process is started.
type LauncherConfig struct {
	Python  string `yaml:"python,omitempty"`
	Module  string `yaml:"module,omitempty"`
	EnvFile string `yaml:"env_file,omitempty"`
}

// CredentialsConfig pins the credentials file instead of scanning.
type CredentialsConfig struct {
	File string `yaml:"file,omitempty"`
}

// CheckConfig tunes the bucket reachability probe.
type CheckConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// ComposeConfig names the compose service that runs the aggregator.
type ComposeConfig struct {
	Service string `yaml:"service,omitempty"`
}

// LoadProjectConfig reads radarctl.yml from dir when present.
// The second return reports whether the file existed; its absence is not
// an error, but a file that fails schema validation is.
func LoadProjectConfig(dir string) (ProjectConfig, bool, error) {
	path := filepath.Join(dir, ProjectConfigFile)
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, false, nil
		}
		return ProjectConfig{}, false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateProjectConfig(payload); err != nil {
		return ProjectConfig{}, false, fmt.Errorf("%s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

// SaveProjectConfig writes a ProjectConfig to radarctl.yml in dir.
func SaveProjectConfig(dir string, cfg ProjectConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ProjectConfigFile), payload, 0o644)
}

// Where: internal/config/projectdir.go
// What: Project directory resolution.
// Why: Centralize the precedence between flag, environment, global config, and binary location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trendradar/radarctl/internal/constants"
	"github.com/trendradar/radarctl/internal/envutil"
)

// ResolveProjectDir determines the trendradar project directory.
// Priority:
// 1. Explicit --dir flag value
// 2. Brand-prefixed PROJECT_DIR environment variable
// 3. project_dir in global config (~/.radarctl/config.yaml)
// 4. Directory containing the radarctl executable
//
// An explicitly configured directory must exist; a bad value is an error,
// never a trigger to fall through to the next source.
func ResolveProjectDir(flagDir string) (string, error) {
	if dir := strings.TrimSpace(flagDir); dir != "" {
		return requireDir(dir, "--dir")
	}

	if dir := envutil.GetHostEnv(constants.HostSuffixProjectDir); dir != "" {
		return requireDir(dir, envutil.HostEnvKey(constants.HostSuffixProjectDir))
	}

	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.ProjectDir != "" {
			return requireDir(cfg.ProjectDir, "project_dir in "+cfgPath)
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// requireDir resolves path to an absolute directory and verifies it exists.
func requireDir(path, source string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory from %s: %w", source, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory from %s is not a directory: %s", source, abs)
	}
	return abs, nil
}

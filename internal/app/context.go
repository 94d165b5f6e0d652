// Where: internal/app/context.go
// What: Shared context resolution for CLI commands.
// Why: Reduce duplicated directory/config setup across commands.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/ui"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// commandContext bundles the resolved project directory with its optional
// radarctl.yml contents.
type commandContext struct {
	Dir        string
	Project    config.ProjectConfig
	HasProject bool
}

func resolveCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	dir, err := deps.DirResolver(cli.Dir)
	if err != nil {
		return commandContext{}, err
	}

	project, found, err := config.LoadProjectConfig(dir)
	if err != nil {
		return commandContext{}, err
	}

	return commandContext{Dir: dir, Project: project, HasProject: found}, nil
}

func loadGlobalConfigOrDefault() config.GlobalConfig {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return config.DefaultGlobalConfig()
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return config.DefaultGlobalConfig()
	}
	return cfg
}

// loadEnvFile loads the --env-file flag value, or .env from the current
// directory when present. Existing process variables always win.
func loadEnvFile(cli CLI, out io.Writer) {
	console := ui.New(out)
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			console.Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			console.Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

// loadProjectEnvFile loads the env file named by radarctl.yml, resolved
// against the project directory. Only the launching commands call this.
func loadProjectEnvFile(ctxInfo commandContext, deps Dependencies) {
	envFile := strings.TrimSpace(ctxInfo.Project.Launcher.EnvFile)
	if envFile == "" {
		return
	}
	if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(ctxInfo.Dir, envFile)
	}
	if err := godotenv.Load(envFile); err != nil {
		deps.Log.Warn().Err(err).Str("file", envFile).Msg("load project env file")
	}
}

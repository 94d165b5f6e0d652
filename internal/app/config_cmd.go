// Where: internal/app/config_cmd.go
// What: Config subcommands.
// Why: Persist machine-wide defaults in ~/.radarctl/config.yaml.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/ui"
)

func runConfigSetDir(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path := strings.TrimSpace(cli.Config.SetDir.Path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return exitWithError(out, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return exitWithError(out, err)
	}
	if !info.IsDir() {
		return exitWithError(out, fmt.Errorf("%s is not a directory", abs))
	}

	if err := config.UpdateGlobalConfig(func(cfg *config.GlobalConfig) {
		cfg.ProjectDir = abs
	}); err != nil {
		return exitWithError(out, err)
	}

	console.Success("default project directory set to " + abs)
	return 0
}

func runConfigSetPython(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	interpreter := strings.TrimSpace(cli.Config.SetPython.Interpreter)
	if interpreter == "" {
		return exitWithError(out, fmt.Errorf("interpreter must not be empty"))
	}

	if err := config.UpdateGlobalConfig(func(cfg *config.GlobalConfig) {
		cfg.Python = interpreter
	}); err != nil {
		return exitWithError(out, err)
	}

	console.Success("default Python interpreter set to " + interpreter)
	return 0
}

// Where: internal/app/status.go
// What: Status command.
// Why: One screen answering "what would run, and what happened last time?".
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/trendradar/radarctl/internal/compose"
	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/meta"
	"github.com/trendradar/radarctl/internal/ui"
	"github.com/trendradar/radarctl/internal/version"
)

func runStatus(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	configPath, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	console.Header("⚙️", "Config")
	console.Item("Version", version.GetVersion())
	console.Item("Path", configPath)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Blank()
	console.Header("📦", "Project")
	console.Item("Dir", ctxInfo.Dir)
	if ctxInfo.HasProject {
		console.Item("Config", config.ProjectConfigFile)
	} else {
		console.Item("Config", "none")
	}

	console.Blank()
	console.Header("⚡", "Last run")
	history, err := deps.Store.Load()
	if err != nil {
		console.ItemPlain(fmt.Sprintf("unavailable: %v", err))
	} else if history.LastRun == nil {
		console.ItemPlain("no runs recorded")
	} else {
		run := history.LastRun
		console.Item("When", run.StartedAt.Format("2006-01-02 15:04:05"))
		console.Item("Mode", run.Mode)
		console.Item("Source", run.Source)
		console.Item("Exit code", run.ExitCode)
	}

	console.Blank()
	console.Header("🐳", "Containers")
	client, err := deps.DockerClient()
	if err != nil {
		console.ItemPlain(fmt.Sprintf("docker unavailable: %v", err))
		return 0
	}
	containers, err := compose.ListProjectContainers(context.Background(), client, meta.ComposeProject)
	if err != nil {
		console.ItemPlain(fmt.Sprintf("docker unavailable: %v", err))
		return 0
	}
	if len(containers) == 0 {
		console.ItemPlain("no containers for project " + meta.ComposeProject)
		return 0
	}
	for _, ctr := range containers {
		console.Item(ctr.Name, fmt.Sprintf("%s (%s)", ctr.State, ctr.Service))
	}
	return 0
}

// Where: internal/app/info.go
// What: Info output for bare invocations.
// Why: Orient the user: where the project is, which credentials would be used.
package app

import (
	"fmt"
	"io"

	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/meta"
	"github.com/trendradar/radarctl/internal/ui"
	"github.com/trendradar/radarctl/internal/version"
)

// runInfo displays configuration details and the credential resolution
// outcome. Used when radarctl is invoked without arguments.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
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
		console.Item("Config", "none (run '"+meta.AppName+" init')")
	}

	console.Blank()
	console.Header("🔑", "Credentials")
	record, source, err := resolveCredentials("", ctxInfo, deps)
	if err != nil {
		console.ItemPlain(fmt.Sprintf("unresolved: %v", err))
		console.Blank()
		console.Info(fmt.Sprintf("put an R2 credentials markdown file in %s or pass --creds", ctxInfo.Dir))
		return 1
	}
	console.Item("Source", source.Path)
	console.Item("Bucket", record.BucketName)
	console.Item("Access Key", maskSecret(record.AccessKeyID))
	console.Item("Endpoint", record.EndpointURL())

	console.Blank()
	console.Header("⚡", "Last run")
	if history, err := deps.Store.Load(); err != nil || history.LastRun == nil {
		console.ItemPlain("no runs recorded")
	} else {
		console.Item("When", history.LastRun.StartedAt.Format("2006-01-02 15:04:05"))
		console.Item("Exit code", history.LastRun.ExitCode)
	}

	console.Blank()
	console.Info(fmt.Sprintf("run '%s run' to start the aggregator", meta.AppName))
	return 0
}

// Where: internal/app/scheduled.go
// What: Scheduled command.
// Why: Headless entry point for cron/systemd/schtasks. No credential
//      resolution: the host scheduler owns the environment; this sets the
//      working directory and launches. Plain output reads well in scheduler mail.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/trendradar/radarctl/internal/launcher"
	"github.com/trendradar/radarctl/internal/state"
)

func runScheduled(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	loadProjectEnvFile(ctxInfo, deps)

	started := deps.Now()
	fmt.Fprintf(out, "%s scheduled run in %s\n", started.Format("2006-01-02 15:04:05"), ctxInfo.Dir)

	exitCode, err := launcher.New(deps.Runner).Launch(context.Background(), launcher.Spec{
		Dir:    ctxInfo.Dir,
		Python: resolvePython("", ctxInfo),
		Module: ctxInfo.Project.Launcher.Module,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	recordRun(deps, state.RunRecord{
		StartedAt:  started,
		FinishedAt: deps.Now(),
		Mode:       "scheduled",
		Source:     "host environment",
		ExitCode:   exitCode,
	})

	fmt.Fprintf(out, "aggregator exit code: %d\n", exitCode)
	return exitCode
}

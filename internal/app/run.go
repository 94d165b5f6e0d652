// Where: internal/app/run.go
// What: Run command.
// Why: The main path: resolve credentials, materialize the environment, launch.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/trendradar/radarctl/internal/compose"
	"github.com/trendradar/radarctl/internal/constants"
	"github.com/trendradar/radarctl/internal/credentials"
	"github.com/trendradar/radarctl/internal/envutil"
	"github.com/trendradar/radarctl/internal/launcher"
	"github.com/trendradar/radarctl/internal/meta"
	"github.com/trendradar/radarctl/internal/state"
	"github.com/trendradar/radarctl/internal/ui"
)

func runRun(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	loadProjectEnvFile(ctxInfo, deps)

	record, source, err := resolveCredentials(cli.Run.Creds, ctxInfo, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🔑", "Credentials")
	console.Item("Source", source.Path)
	console.Item("Account ID", record.AccountID)
	console.Item("Bucket", record.BucketName)
	console.Item("Endpoint", record.EndpointURL())

	ctx := context.Background()
	started := deps.Now()
	mode := "process"

	var exitCode int
	if cli.Run.Compose {
		mode = "compose"
		exitCode, err = runComposeMode(ctx, ctxInfo, record, deps, console)
	} else {
		exitCode, err = runProcessMode(ctx, cli, ctxInfo, record, deps, console)
	}
	if err != nil {
		return exitWithError(out, err)
	}

	recordRun(deps, state.RunRecord{
		StartedAt:  started,
		FinishedAt: deps.Now(),
		Mode:       mode,
		Source:     source.Path,
		ExitCode:   exitCode,
	})

	if exitCode == 0 {
		console.Success("aggregator finished")
	} else {
		console.Error(fmt.Sprintf("aggregator exited with code %d", exitCode))
	}
	return exitCode
}

// runProcessMode exports the storage environment into this process and
// launches the interpreter as a child. This is the only place the five
// variables are written, and only after validation has passed.
func runProcessMode(
	ctx context.Context,
	cli CLI,
	ctxInfo commandContext,
	record credentials.Record,
	deps Dependencies,
	console *ui.Console,
) (int, error) {
	if err := deps.ExportEnv(record.Env()); err != nil {
		return 0, err
	}

	python := resolvePython(cli.Run.Python, ctxInfo)
	module := strings.TrimSpace(ctxInfo.Project.Launcher.Module)
	console.Info(fmt.Sprintf("starting %s -m %s", orDefault(python, meta.DefaultInterpreter), orDefault(module, meta.ModuleName)))

	return launcher.New(deps.Runner).Launch(ctx, launcher.Spec{
		Dir:    ctxInfo.Dir,
		Python: python,
		Module: module,
	})
}

// runComposeMode hands the storage variables to `docker compose run` as
// container environment. The host process environment stays untouched.
func runComposeMode(
	ctx context.Context,
	ctxInfo commandContext,
	record credentials.Record,
	deps Dependencies,
	console *ui.Console,
) (int, error) {
	service := strings.TrimSpace(ctxInfo.Project.Compose.Service)
	if service == "" {
		service = meta.ComposeService
	}

	if client, err := deps.DockerClient(); err == nil {
		if err := compose.GuardServiceIdle(ctx, client, meta.ComposeProject, service); err != nil {
			return 0, err
		}
	} else {
		deps.Log.Warn().Err(err).Msg("docker daemon unavailable; skipping overlap check")
	}

	console.Info(fmt.Sprintf("starting compose service %s", service))
	return compose.RunService(ctx, deps.ComposeRunner, compose.RunOptions{
		Dir:     ctxInfo.Dir,
		Service: service,
		Env:     record.Env(),
	})
}

// resolvePython picks the interpreter: flag, then brand env variable, then
// project config, then global config. Empty falls through to the launcher
// default.
func resolvePython(flagPython string, ctxInfo commandContext) string {
	if python := strings.TrimSpace(flagPython); python != "" {
		return python
	}
	if python := envutil.GetHostEnv(constants.HostSuffixPython); python != "" {
		return python
	}
	if python := strings.TrimSpace(ctxInfo.Project.Launcher.Python); python != "" {
		return python
	}
	if python := loadGlobalConfigOrDefault().Python; python != "" {
		return python
	}
	return ""
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// recordRun appends to the run history. Failures are diagnostic, never fatal:
// the aggregator's result matters more than our bookkeeping.
func recordRun(deps Dependencies, run state.RunRecord) {
	if err := deps.Store.Record(run); err != nil {
		deps.Log.Warn().Err(err).Msg("record run history")
	}
}

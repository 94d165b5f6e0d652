// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/trendradar/radarctl/internal/compose"
	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/credentials"
	"github.com/trendradar/radarctl/internal/interaction"
	"github.com/trendradar/radarctl/internal/launcher"
	"github.com/trendradar/radarctl/internal/logging"
	"github.com/trendradar/radarctl/internal/meta"
	"github.com/trendradar/radarctl/internal/state"
	"github.com/trendradar/radarctl/internal/storage"
	"github.com/trendradar/radarctl/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out           io.Writer
	LogOut        io.Writer
	Log           zerolog.Logger
	Runner        launcher.CommandRunner
	ComposeRunner compose.CommandRunner
	DockerClient  func() (compose.DockerClient, error)
	BucketClient  func(context.Context, credentials.Record) (storage.BucketAPI, error)
	Prompter      interaction.Prompter
	Store         state.Store
	DirResolver   func(string) (string, error)
	ExportEnv     func(map[string]string) error
	Executable    func() (string, error)
	Now           func() time.Time
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Dir     string `help:"Project directory (default: configured or executable location)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`

	Run       RunCmd       `cmd:"" help:"Resolve credentials and start the aggregator"`
	Validate  ValidateCmd  `cmd:"" help:"Resolve and validate credentials without starting anything"`
	Scheduled ScheduledCmd `cmd:"" help:"Headless run entry point for schedulers"`
	Check     CheckCmd     `cmd:"" help:"Probe the bucket with the resolved credentials"`
	Status    StatusCmd    `cmd:"" help:"Show project, last run, and container state"`
	Init      InitCmd      `cmd:"" help:"Create the credentials file for the project"`
	Schedule  ScheduleCmd  `cmd:"" help:"Scheduler integration helpers"`
	Config    ConfigCmd    `cmd:"" name:"config" help:"Manage global configuration"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	RunCmd struct {
		Creds   string `help:"Path to the credentials markdown file (skips scanning)"`
		Python  string `help:"Python interpreter for the aggregator"`
		Compose bool   `help:"Run inside the compose service instead of a host process"`
	}
	ValidateCmd struct {
		Creds string `help:"Path to the credentials markdown file (skips scanning)"`
	}
	ScheduledCmd struct{}
	CheckCmd struct {
		Creds   string `help:"Path to the credentials markdown file (skips scanning)"`
		Timeout int    `help:"Probe timeout in seconds (default: project config or 10)"`
	}
	StatusCmd struct{}
	InitCmd   struct {
		Force bool `help:"Overwrite an existing credentials file"`
	}
	ScheduleCmd struct {
		Export ScheduleExportCmd `cmd:"" help:"Print a scheduler snippet for the scheduled entry point"`
	}
	ScheduleExportCmd struct {
		Format string `help:"Snippet format: cron, systemd, or schtasks"`
		Time   string `default:"08:00" help:"Daily run time (HH:MM)"`
	}
	ConfigCmd struct {
		SetDir    ConfigSetDirCmd    `cmd:"" name:"set-dir" help:"Persist the default project directory"`
		SetPython ConfigSetPythonCmd `cmd:"" name:"set-python" help:"Persist the default Python interpreter"`
	}
	ConfigSetDirCmd struct {
		Path string `arg:"" help:"Project directory"`
	}
	ConfigSetPythonCmd struct {
		Interpreter string `arg:"" help:"Python interpreter (name or path)"`
	}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the command's exit code;
// for run and scheduled that is the aggregator's own exit code.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show current configuration and state
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, out)
	}

	deps.Log = logging.New(deps.LogOut, cli.Verbose)
	loadEnvFile(cli, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// withDefaults fills in production implementations for any dependency the
// caller left nil. Tests override only the pieces they observe.
func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.LogOut == nil {
		deps.LogOut = os.Stderr
	}
	deps.Log = logging.New(deps.LogOut, false)
	if deps.Runner == nil {
		deps.Runner = launcher.ExecRunner{}
	}
	if deps.ComposeRunner == nil {
		deps.ComposeRunner = launcher.ExecRunner{}
	}
	if deps.DockerClient == nil {
		deps.DockerClient = compose.NewDockerClient
	}
	if deps.BucketClient == nil {
		deps.BucketClient = storage.NewClient
	}
	if deps.DirResolver == nil {
		deps.DirResolver = config.ResolveProjectDir
	}
	if deps.ExportEnv == nil {
		deps.ExportEnv = launcher.ExportEnv
	}
	if deps.Executable == nil {
		deps.Executable = os.Executable
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return deps
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"run":             runRun,
		"validate":        runValidate,
		"scheduled":       runScheduled,
		"check":           runCheck,
		"status":          runStatus,
		"init":            runInitProject,
		"schedule export": runScheduleExport,
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "config set-dir", handler: runConfigSetDir},
		{prefix: "config set-python", handler: runConfigSetPython},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "--dir", "--env-file":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(args []string, err error, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected one of") {
		switch commandName(args) {
		case "config":
			return exitWithSuggestion(out, "Config subcommand required.", []string{
				meta.AppName + " config set-dir <path>",
				meta.AppName + " config set-python <interpreter>",
			})
		case "schedule":
			return exitWithSuggestion(out, "Schedule subcommand required.", []string{
				meta.AppName + " schedule export --format cron",
			})
		}
	}

	return exitWithError(out, err)
}

func exitWithSuggestion(out io.Writer, msg string, suggestions []string) int {
	fmt.Fprintln(out, msg)
	for _, suggestion := range suggestions {
		fmt.Fprintf(out, "   %s\n", suggestion)
	}
	return 1
}

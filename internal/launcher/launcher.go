// Where: internal/launcher/launcher.go
// What: External module launch with exit-code propagation.
// Why: The CLI's own exit status must be whatever the trendradar run returned.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/trendradar/radarctl/internal/meta"
)

// Spec describes one launch of the external module.
type Spec struct {
	// Dir is the working directory for the child, normally the project dir.
	Dir string
	// Python is the interpreter executable; empty means meta.DefaultInterpreter.
	Python string
	// Module is the module passed to -m; empty means meta.ModuleName.
	Module string
}

// Launcher runs the external module through an injected CommandRunner.
type Launcher struct {
	Runner CommandRunner
}

// New returns a Launcher backed by the given runner, defaulting to ExecRunner.
func New(runner CommandRunner) Launcher {
	if runner == nil {
		runner = ExecRunner{}
	}
	return Launcher{Runner: runner}
}

// Launch executes `<python> -m <module>` in spec.Dir with the current process
// environment inherited. It returns the child's exit code. A non-nil error
// means the child never ran (missing interpreter, bad directory); a non-zero
// code with nil error is the child's own verdict and is propagated as-is.
func (l Launcher) Launch(ctx context.Context, spec Spec) (int, error) {
	python := strings.TrimSpace(spec.Python)
	if python == "" {
		python = meta.DefaultInterpreter
	}
	module := strings.TrimSpace(spec.Module)
	if module == "" {
		module = meta.ModuleName
	}

	err := l.Runner.Run(ctx, spec.Dir, python, "-m", module)
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("launch %s -m %s: %w", python, module, err)
}

// Where: internal/compose/run.go
// What: Docker compose helpers for one-shot service runs.
// Why: Provide a minimal, testable interface for containerized aggregator runs.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// CommandRunner defines the interface for executing docker commands.
// Implementations run in the specified directory with inherited stdio.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// RunOptions contains configuration for a one-shot compose service run.
type RunOptions struct {
	Dir     string
	Service string
	Env     map[string]string
}

// RunService executes `docker compose run --rm` for the configured service,
// injecting Env as container environment. The storage variables never touch
// the host process this way. Returns the container's exit code.
func RunService(ctx context.Context, runner CommandRunner, opts RunOptions) (int, error) {
	if runner == nil {
		return 0, fmt.Errorf("command runner is nil")
	}
	service := strings.TrimSpace(opts.Service)
	if service == "" {
		return 0, fmt.Errorf("compose service is required")
	}

	args := []string{"compose", "run", "--rm"}
	keys := make([]string, 0, len(opts.Env))
	for key := range opts.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, "-e", key+"="+opts.Env[key])
	}
	args = append(args, service)

	err := runner.Run(ctx, opts.Dir, "docker", args...)
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("docker compose run %s: %w", service, err)
}

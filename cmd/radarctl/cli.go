// Where: cmd/radarctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/trendradar/radarctl/internal/app"
	"github.com/trendradar/radarctl/internal/interaction"
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// Docker and S3 clients are created lazily inside command handlers, so the
// only terminal-dependent decision made here is whether to prompt.
func buildDependencies() app.Dependencies {
	deps := app.Dependencies{
		Out:    os.Stdout,
		LogOut: os.Stderr,
	}
	if interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout) {
		deps.Prompter = interaction.HuhPrompter{}
	}
	return deps
}

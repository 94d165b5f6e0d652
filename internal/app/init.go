// Where: internal/app/init.go
// What: Init command.
// Why: Create the credentials markdown interactively and pin it for later runs.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trendradar/radarctl/internal/config"
	"github.com/trendradar/radarctl/internal/credentials"
	"github.com/trendradar/radarctl/internal/interaction"
	"github.com/trendradar/radarctl/internal/ui"
)

func runInitProject(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	dir, err := deps.DirResolver(cli.Dir)
	if err != nil {
		return exitWithError(out, err)
	}

	path := filepath.Join(dir, credentials.DefaultFileName)
	if _, err := os.Stat(path); err == nil && !cli.Init.Force {
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("%s already exists (use --force to overwrite)", path))
		}
		overwrite, err := deps.Prompter.Confirm(credentials.DefaultFileName + " already exists. Overwrite?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !overwrite {
			console.Info("keeping existing " + credentials.DefaultFileName)
			return 0
		}
	}

	if deps.Prompter == nil {
		return exitWithError(out, fmt.Errorf("init prompts for credentials and needs an interactive terminal"))
	}

	record, err := promptRecord(deps.Prompter)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := record.Validate(); err != nil {
		return exitWithError(out, err)
	}

	// The file holds a live secret; keep it readable by the owner only.
	if err := os.WriteFile(path, []byte(record.Markdown()), 0o600); err != nil {
		return exitWithError(out, err)
	}

	// Pin the new file in radarctl.yml so later runs resolve it without scanning.
	cfg, _, err := config.LoadProjectConfig(dir)
	if err != nil {
		return exitWithError(out, err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Credentials.File = credentials.DefaultFileName
	if err := config.SaveProjectConfig(dir, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success("created " + path)
	console.Item("Bucket", record.BucketName)
	console.Item("Endpoint", record.EndpointURL())
	console.Info("pinned in " + config.ProjectConfigFile)
	return 0
}

func promptRecord(prompter interaction.Prompter) (credentials.Record, error) {
	record := credentials.Record{}
	fields := []struct {
		title       string
		placeholder string
		dest        *string
	}{
		{"Account ID", "abc123def456", &record.AccountID},
		{"Bucket name", "trendradar", &record.BucketName},
		{"Access key ID", "", &record.AccessKeyID},
		{"Secret access key", "", &record.SecretAccessKey},
	}
	for _, field := range fields {
		value, err := prompter.Input(field.title, field.placeholder)
		if err != nil {
			return credentials.Record{}, err
		}
		*field.dest = strings.TrimSpace(value)
	}
	return record, nil
}

// Where: internal/app/schedule_cmd.go
// What: Schedule export command.
// Why: Print ready-to-install scheduler snippets pointing at `radarctl scheduled`.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/trendradar/radarctl/internal/meta"
	"github.com/trendradar/radarctl/internal/schedule"
)

func runScheduleExport(cli CLI, deps Dependencies, out io.Writer) int {
	format := strings.TrimSpace(cli.Schedule.Export.Format)
	if format == "" {
		if deps.Prompter != nil {
			selected, err := deps.Prompter.Select("Scheduler format", schedule.Formats())
			if err != nil {
				return exitWithError(out, err)
			}
			format = selected
		} else {
			format = schedule.FormatCron
		}
	}

	hour, minute, err := schedule.ParseTime(cli.Schedule.Export.Time)
	if err != nil {
		return exitWithError(out, err)
	}

	dir, err := deps.DirResolver(cli.Dir)
	if err != nil {
		return exitWithError(out, err)
	}

	executable, err := deps.Executable()
	if err != nil {
		executable = meta.AppName
	}

	snippet, err := schedule.Render(format, schedule.TemplateData{
		Executable: executable,
		ProjectDir: dir,
		Hour:       hour,
		Minute:     minute,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprint(out, snippet)
	return 0
}

// Where: internal/schedule/renderer.go
// What: Render scheduler snippets for cron, systemd, and schtasks.
// Why: Give operators a copy-pasteable way to wire up the scheduled entry point.
package schedule

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

const (
	FormatCron     = "cron"
	FormatSystemd  = "systemd"
	FormatSchtasks = "schtasks"
)

// DefaultTime is the wall-clock time used when the caller doesn't set one.
const DefaultTime = "08:00"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// TemplateData carries everything the scheduler templates interpolate.
type TemplateData struct {
	Executable string
	ProjectDir string
	Hour       int
	Minute     int
}

// Formats lists the supported export formats in display order.
func Formats() []string {
	return []string{FormatCron, FormatSystemd, FormatSchtasks}
}

// Render produces the scheduler snippet for the given format.
func Render(format string, data TemplateData) (string, error) {
	switch format {
	case FormatCron, FormatSystemd, FormatSchtasks:
	default:
		return "", fmt.Errorf("unsupported format %q (expected one of: %s)", format, strings.Join(Formats(), ", "))
	}
	return renderTemplate(format+".tmpl", data)
}

// ParseTime parses a HH:MM wall-clock time.
func ParseTime(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", value, err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

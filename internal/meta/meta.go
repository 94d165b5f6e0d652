// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming and directory-layout decisions in one place.
package meta

const (
	// Project Identity
	AppName   = "radarctl"
	Slug      = "radarctl"
	EnvPrefix = "RADAR"

	// External collaborator. The CLI only prepares the environment and
	// launches it; all scraping/export/upload lives there.
	DefaultInterpreter = "python"
	ModuleName         = "trendradar"

	// Directory Layout
	HomeDir = ".radarctl"

	// Docker deployment defaults
	ComposeProject = "trendradar"
	ComposeService = "trendradar"
)

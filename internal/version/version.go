// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (module version, Git commit) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns a human-readable version string derived from build info.
// Release builds installed via `go install` report the module version;
// source builds report the VCS revision, with "(dirty)" when the tree was
// modified. Without build info it returns "dev".
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}

// Where: internal/app/creds.go
// What: Credential resolution shared by run, validate, and check.
// Why: Every resolving command resolves the same way: explicit path beats env
//      beats project config beats directory scan.
package app

import (
	"path/filepath"
	"strings"

	"github.com/trendradar/radarctl/internal/constants"
	"github.com/trendradar/radarctl/internal/credentials"
	"github.com/trendradar/radarctl/internal/envutil"
)

// credentialsPath picks the explicit credentials file, if any. An empty
// return means the project directory is scanned instead.
func credentialsPath(flagPath string, ctxInfo commandContext) string {
	if path := strings.TrimSpace(flagPath); path != "" {
		return path
	}
	if path := envutil.GetHostEnv(constants.HostSuffixCredsFile); path != "" {
		return path
	}
	if path := strings.TrimSpace(ctxInfo.Project.Credentials.File); path != "" {
		if !filepath.IsAbs(path) {
			return filepath.Join(ctxInfo.Dir, path)
		}
		return path
	}
	return ""
}

func resolveCredentials(flagPath string, ctxInfo commandContext, deps Dependencies) (credentials.Record, credentials.Source, error) {
	record, source, err := credentials.Resolve(credentials.Options{
		Dir:  ctxInfo.Dir,
		Path: credentialsPath(flagPath, ctxInfo),
	})
	if err != nil {
		return credentials.Record{}, credentials.Source{}, err
	}
	deps.Log.Debug().Str("source", source.Path).Msg("credentials resolved")
	return record, source, nil
}

// maskSecret keeps a short recognizable prefix and hides the rest.
func maskSecret(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}

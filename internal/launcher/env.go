// Where: internal/launcher/env.go
// What: Storage environment materialization.
// Why: The trendradar module's contract is environment variables; everything
//      upstream handles credentials as plain values and this is the one spot
//      that touches the process environment.
package launcher

import (
	"fmt"
	"os"
	"sort"
)

// ExportEnv writes the storage variables into the current process environment
// so the launched child inherits them. Called exactly once per invocation,
// immediately before Launch, and never on the validate-only path.
func ExportEnv(vars map[string]string) error {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := os.Setenv(key, vars[key]); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

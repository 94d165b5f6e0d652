// Where: cmd/radarctl/main.go
// What: CLI entrypoint.
// Why: Execute radarctl commands with configured dependencies.
package main

import (
	"os"

	"github.com/trendradar/radarctl/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

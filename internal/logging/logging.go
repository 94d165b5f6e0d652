// Where: internal/logging/logging.go
// What: Diagnostic logger setup.
// Why: Keep --verbose wiring and output format in one place.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the diagnostic logger. Verbose enables debug-level output;
// otherwise only warnings and errors surface so the console stays readable.
func New(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

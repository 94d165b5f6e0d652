// Where: internal/credentials/resolve.go
// What: End-to-end credential resolution.
// Why: One entry point for commands: explicit path or discovery, then
//      extraction and validation, with no side effects.
package credentials

import "fmt"

// Options selects where the credentials come from.
type Options struct {
	// Dir is the project directory scanned when Path is empty.
	Dir string
	// Path, when set, bypasses discovery entirely.
	Path string
}

// Resolve produces a validated Record plus the source it came from. On any
// failure the Record is zero and nothing downstream should run.
func Resolve(opts Options) (Record, Source, error) {
	source, err := locate(opts)
	if err != nil {
		return Record{}, Source{}, err
	}

	record := Parse(source.Text)
	if err := record.Validate(); err != nil {
		return Record{}, Source{}, fmt.Errorf("%s: %w", source.Path, err)
	}
	return record, source, nil
}

func locate(opts Options) (Source, error) {
	if opts.Path != "" {
		return ReadSource(opts.Path)
	}
	return Discover(opts.Dir)
}

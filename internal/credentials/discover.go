// Where: internal/credentials/discover.go
// What: Credentials file discovery in a project directory.
// Why: The file is user-maintained markdown with no fixed name; find it by
//      name hints first and content markers always.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNoCredentialsFile is returned when no markdown file in the project
// directory passes the marker test.
var ErrNoCredentialsFile = errors.New("no credentials file found")

// DefaultFileName is the name init writes; it carries an r2 hint so scanning
// finds it first.
const DefaultFileName = "r2-credentials.md"

// markers are the field-name fragments that identify a credentials file
// during scanning. bucket_name is deliberately not one of them; the original
// launcher accepted files before buckets were recorded in them.
var markers = []string{
	`"account_id":`,
	`"access_key_id":`,
	`"secret_access_key":`,
}

// Source is a credentials file that has been located and read.
type Source struct {
	Path string
	Text string
}

// isMarkdown reports whether the file name carries a markdown extension.
func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// hasNameHint reports whether the file name suggests storage credentials.
func hasNameHint(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "r2") || strings.Contains(lower, "s3")
}

// hasMarkers reports whether the text contains every marker, case-insensitively.
func hasMarkers(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range markers {
		if !strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// Discover scans dir (non-recursively) for a credentials file. Markdown files
// whose names hint at r2/s3 are tried first; when none carry a hint, every
// markdown file is a candidate. The first candidate containing all markers
// wins, in directory-listing order. Candidates that cannot be read or decoded
// as UTF-8 are skipped silently.
func Discover(dir string) (Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Source{}, fmt.Errorf("scan %s: %w", dir, err)
	}

	var all []string
	var hinted []string
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}
		all = append(all, entry.Name())
		if hasNameHint(entry.Name()) {
			hinted = append(hinted, entry.Name())
		}
	}

	candidates := hinted
	if len(candidates) == 0 {
		candidates = all
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		text, ok := tryRead(path)
		if !ok {
			continue
		}
		if hasMarkers(text) {
			return Source{Path: path, Text: text}, nil
		}
	}

	return Source{}, fmt.Errorf(
		"%w in %s: pass an explicit credentials file with --creds", ErrNoCredentialsFile, dir,
	)
}

// tryRead maps any read or decode failure to absence, keeping the discovery
// loop a pure function from the file list to the selected candidate.
func tryRead(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// ReadSource reads an explicitly supplied credentials file. Unlike scanning,
// every failure here is fatal: a bad explicit path must never fall back to
// directory discovery.
func ReadSource(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read credentials file: %w", err)
	}
	if !utf8.Valid(data) {
		return Source{}, fmt.Errorf("credentials file %s is not valid UTF-8 text", path)
	}
	return Source{Path: path, Text: string(data)}, nil
}

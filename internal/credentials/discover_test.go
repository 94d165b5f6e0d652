// Where: internal/credentials/discover_test.go
// What: Tests for credentials file discovery.
// Why: Name hints, marker acceptance, fallback, and silent skips are exactly
//      what keeps discovery predictable on real project directories.
package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validBody = "# R2 config\n" +
	"\"account_id\": \"abc123\",\n" +
	"\"bucket_name\": \"trend-exports\",\n" +
	"\"access_key_id\": \"AKIDEXAMPLE\",\n" +
	"\"secret_access_key\": \"shh-secret\"\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiscoverPrefersHintedNameOverAlphabeticalOrder(t *testing.T) {
	dir := t.TempDir()
	// "notes.md" sorts before "r2-info.md" but carries no markers.
	writeFile(t, dir, "notes.md", "# meeting notes\nnothing here\n")
	want := writeFile(t, dir, "r2-info.md", validBody)

	source, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if source.Path != want {
		t.Fatalf("expected %s, got %s", want, source.Path)
	}
}

func TestDiscoverHintedNameStillNeedsMarkers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r2-todo.md", "# r2 migration todo list\n")
	want := writeFile(t, dir, "s3-creds.md", validBody)

	source, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if source.Path != want {
		t.Fatalf("expected %s, got %s", want, source.Path)
	}
}

func TestDiscoverFallsBackToAllMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# readme\n")
	want := writeFile(t, dir, "config.md", validBody)

	source, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if source.Path != want {
		t.Fatalf("expected %s, got %s", want, source.Path)
	}
}

func TestDiscoverHintedSetExcludesFallback(t *testing.T) {
	dir := t.TempDir()
	// Once any name carries a hint, only hinted files are candidates; a
	// marker-bearing unhinted file must not be picked up.
	writeFile(t, dir, "r2-empty.md", "r2 placeholder\n")
	writeFile(t, dir, "config.md", validBody)

	_, err := Discover(dir)
	if !errors.Is(err, ErrNoCredentialsFile) {
		t.Fatalf("expected ErrNoCredentialsFile, got %v", err)
	}
}

func TestDiscoverIgnoresNonMarkdownAndDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r2.txt", validBody)
	writeFile(t, dir, "r2.json", validBody)
	if err := os.Mkdir(filepath.Join(dir, "r2-docs.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := Discover(dir)
	if !errors.Is(err, ErrNoCredentialsFile) {
		t.Fatalf("expected ErrNoCredentialsFile, got %v", err)
	}
}

func TestDiscoverSkipsNonUTF8Candidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r2-binary.md", "\xff\xfe\x00broken")
	want := writeFile(t, dir, "r2-info.md", validBody)

	source, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if source.Path != want {
		t.Fatalf("expected %s, got %s", want, source.Path)
	}
}

func TestDiscoverMarkersAreCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	body := "\"ACCOUNT_ID\": \"abc123\"\n" +
		"\"Access_Key_Id\": \"AKIDEXAMPLE\"\n" +
		"\"SECRET_ACCESS_KEY\": \"shh-secret\"\n"
	want := writeFile(t, dir, "r2.md", body)

	source, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if source.Path != want {
		t.Fatalf("expected %s, got %s", want, source.Path)
	}
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Discover(dir)
	if !errors.Is(err, ErrNoCredentialsFile) {
		t.Fatalf("expected ErrNoCredentialsFile, got %v", err)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if errors.Is(err, ErrNoCredentialsFile) {
		t.Fatalf("missing directory is a scan failure, not a no-candidates result")
	}
}

func TestReadSourceMissingFileIsFatal(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestReadSourceRejectsNonUTF8(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "creds.md", "\xff\xfebroken")
	if _, err := ReadSource(path); err == nil {
		t.Fatalf("expected decode error for non-UTF-8 explicit file")
	}
}

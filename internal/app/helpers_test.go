// Where: internal/app/helpers_test.go
// What: Shared fakes and fixtures for command tests.
// Why: Every command test runs end-to-end through Run with isolated state.
package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
)

const credsBody = "# R2 access\n" +
	"\"account_id\": \"abc123\",\n" +
	"\"bucket_name\": \"trend-data\",\n" +
	"\"access_key_id\": \"AKIDEXAMPLE\",\n" +
	"\"secret_access_key\": \"shh-secret\"\n"

// setupTestHome isolates every config and state location from the host.
func setupTestHome(t *testing.T) {
	t.Helper()
	t.Setenv("RADAR_CONFIG_PATH", "")
	t.Setenv("RADAR_CONFIG_HOME", t.TempDir())
	t.Setenv("RADAR_HOME", t.TempDir())
	t.Setenv("RADAR_PROJECT_DIR", "")
	t.Setenv("RADAR_CREDS_FILE", "")
	t.Setenv("RADAR_PYTHON", "")
}

func writeCreds(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "r2-credentials.md")
	if err := os.WriteFile(path, []byte(credsBody), 0o644); err != nil {
		t.Fatalf("write credentials fixture: %v", err)
	}
	return path
}

func writeFileHelper(dir, name, body string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
}

type fakeRunner struct {
	lastDir  string
	lastName string
	lastArgs []string
	calls    int
	runErr   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls++
	f.lastDir = dir
	f.lastName = name
	f.lastArgs = args
	return f.runErr
}

// realExitError produces an *exec.ExitError with the given code.
func realExitError(t *testing.T, code int) error {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("exit code fabrication uses /bin/sh")
	}
	err := exec.Command("/bin/sh", "-c", "exit "+strconv.Itoa(code)).Run()
	if err == nil {
		t.Fatal("expected command to fail")
	}
	return err
}

type fakePrompter struct {
	inputs    []string
	selection string
	confirm   bool
	inputErr  error
}

func (f *fakePrompter) Input(_, _ string) (string, error) {
	if f.inputErr != nil {
		return "", f.inputErr
	}
	if len(f.inputs) == 0 {
		return "", nil
	}
	next := f.inputs[0]
	f.inputs = f.inputs[1:]
	return next, nil
}

func (f *fakePrompter) Select(_ string, _ []string) (string, error) {
	return f.selection, nil
}

func (f *fakePrompter) Confirm(_ string) (bool, error) {
	return f.confirm, nil
}

type fakeDockerClient struct {
	containers []container.Summary
	listErr    error
}

func (f *fakeDockerClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.containers, nil
}

func runningAggregator() []container.Summary {
	return []container.Summary{
		{
			Names: []string{"/trendradar-trendradar-1"},
			State: "running",
			Labels: map[string]string{
				"com.docker.compose.project": "trendradar",
				"com.docker.compose.service": "trendradar",
			},
		},
	}
}

type fakeBucketAPI struct {
	lastBucket string
	deadline   time.Duration
	headErr    error
}

func (f *fakeBucketAPI) HeadBucket(ctx context.Context, name string) error {
	f.lastBucket = name
	if d, ok := ctx.Deadline(); ok {
		f.deadline = time.Until(d)
	}
	return f.headErr
}

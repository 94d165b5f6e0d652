// Where: internal/state/store.go
// What: Run-history persistence.
// Why: A launcher driven by a host scheduler has no console to look back at;
//      the last run's outcome must survive on disk.
package state

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/trendradar/radarctl/internal/constants"
	"github.com/trendradar/radarctl/internal/envutil"
	"github.com/trendradar/radarctl/internal/meta"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunRecord captures the outcome of one launch.
type RunRecord struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Mode       string    `json:"mode"`
	Source     string    `json:"source,omitempty"`
	ExitCode   int       `json:"exit_code"`
}

// History is the persisted state file content.
type History struct {
	Version int         `json:"version"`
	LastRun *RunRecord  `json:"last_run,omitempty"`
	Runs    []RunRecord `json:"runs,omitempty"`
}

// keepRuns bounds the on-disk history length.
const keepRuns = 20

// Store reads and writes the launcher state file.
type Store struct{}

// NewStore creates a Store backed by the local filesystem.
func NewStore() Store {
	return Store{}
}

// Load reads the history, returning an empty value when no state exists yet.
func (Store) Load() (History, error) {
	path, err := statePath()
	if err != nil {
		return History{}, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return History{Version: 1}, nil
		}
		return History{}, err
	}
	var history History
	if err := json.Unmarshal(payload, &history); err != nil {
		return History{}, err
	}
	if history.Version == 0 {
		history.Version = 1
	}
	return history, nil
}

// Record appends a run to the history and persists it.
func (s Store) Record(run RunRecord) error {
	history, err := s.Load()
	if err != nil {
		// A corrupt state file must not block launches; start over.
		history = History{Version: 1}
	}

	history.LastRun = &run
	history.Runs = append(history.Runs, run)
	if len(history.Runs) > keepRuns {
		history.Runs = history.Runs[len(history.Runs)-keepRuns:]
	}

	path, err := statePath()
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func statePath() (string, error) {
	home, err := resolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "state.json"), nil
}

// resolveHome determines the base directory for launcher data.
// Uses the brand-prefixed HOME variable if set, otherwise ~/.radarctl.
func resolveHome() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixHome); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir), nil
}

package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Monitor persists run records as one JSON file per run inside a results
// directory, and lists what has been stored so far.
type Monitor struct {
	dir string
}

// NewMonitor returns a Monitor rooted at dir. The directory is created on
// first save, not here, so constructing a Monitor never touches the disk.
func NewMonitor(dir string) *Monitor {
	return &Monitor{dir: dir}
}

// Save writes the record as pretty-printed JSON named
// <algorithm>_<size>cities_<YYYYMMDD_HHMMSS_mmm>.json and returns the file
// name (not the full path).
func (m *Monitor) Save(r *Record) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("results: create dir %s: %w", m.dir, err)
	}

	name := fmt.Sprintf("%s_%dcities_%s.json",
		r.AlgorithmName, r.DatasetSize, timestampSlug(r.StartTimestamp))

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("results: marshal record: %w", err)
	}
	if err = os.WriteFile(filepath.Join(m.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("results: write %s: %w", name, err)
	}

	return name, nil
}

// List returns the names of all stored result files, sorted alphabetically.
// A missing results directory yields an empty list, not an error.
func (m *Monitor) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("results: read dir %s: %w", m.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// timestampSlug formats t as YYYYMMDD_HHMMSS_mmm (millisecond precision),
// filesystem-safe and sortable.
func timestampSlug(t time.Time) string {
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/1e6)
}

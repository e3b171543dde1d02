// Package dataset - catalog of predefined TSP instances.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlath/matrix"
)

// ErrUnknownInstance indicates a name that matches no predefined instance.
var ErrUnknownInstance = errors.New("dataset: unknown instance")

// Instance identifies one of the predefined distance-matrix files.
type Instance int

const (
	// TSP48 is the 48-city instance.
	TSP48 Instance = iota

	// TSP76 is the 76-city instance.
	TSP76

	// TSP127 is the 127-city instance.
	TSP127
)

// Instances lists the catalog in display order.
var Instances = []Instance{TSP48, TSP76, TSP127}

// FileName returns the instance's file name within a data directory.
// The inconsistent TSP-76 spelling is the historical name of that file.
func (i Instance) FileName() string {
	switch i {
	case TSP48:
		return "TSP_48.csv"
	case TSP76:
		return "TSP-76.csv"
	case TSP127:
		return "TSP_127.csv"
	default:
		return ""
	}
}

// Cities returns the number of cities in the instance.
func (i Instance) Cities() int {
	switch i {
	case TSP48:
		return 48
	case TSP76:
		return 76
	case TSP127:
		return 127
	default:
		return 0
	}
}

// DisplayName returns the human-readable instance name.
func (i Instance) DisplayName() string {
	switch i {
	case TSP48:
		return "TSP 48 Cities"
	case TSP76:
		return "TSP 76 Cities"
	case TSP127:
		return "TSP 127 Cities"
	default:
		return "unknown"
	}
}

// String returns the canonical short name used on the command line.
func (i Instance) String() string {
	switch i {
	case TSP48:
		return "tsp48"
	case TSP76:
		return "tsp76"
	case TSP127:
		return "tsp127"
	default:
		return "unknown"
	}
}

// ParseInstance maps a user-supplied name onto the catalog. Accepted forms
// per instance: "tsp48", "tsp_48", "48" (case-insensitive).
func ParseInstance(s string) (Instance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tsp48", "tsp_48", "48":
		return TSP48, nil
	case "tsp76", "tsp_76", "76":
		return TSP76, nil
	case "tsp127", "tsp_127", "127":
		return TSP127, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInstance, s)
	}
}

// Load reads the instance's matrix from dir and verifies that its dimension
// matches the catalog's city count.
func (i Instance) Load(dir string) (*matrix.Dense, error) {
	if i.FileName() == "" {
		return nil, ErrUnknownInstance
	}
	d, err := Load(filepath.Join(dir, i.FileName()))
	if err != nil {
		return nil, err
	}
	if d.Rows() != i.Cities() {
		return nil, fmt.Errorf("%w: %s has %d rows, catalog says %d cities",
			ErrNotSquare, i.FileName(), d.Rows(), i.Cities())
	}

	return d, nil
}

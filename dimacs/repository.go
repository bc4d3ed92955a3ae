package dimacs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kingsene19/graph-coloration/core"
)

// colExt is the instance file extension the repository recognizes.
const colExt = ".col"

// Repository serves DIMACS instances stored as <name>.col files in one
// directory. The zero value with a Dir set is ready to use.
type Repository struct {
	// Dir is the directory holding the .col files.
	Dir string
}

// List returns the base names (extension stripped) of every .col file in
// the repository directory, sorted lexicographically.
func (r Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("dimacs: list %s: %w", r.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), colExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), colExt))
	}

	return names, nil
}

// Path returns the file path the instance name maps to.
func (r Repository) Path(name string) string {
	return filepath.Join(r.Dir, name+colExt)
}

// Load parses the named instance.
// A missing file yields ErrInstanceNotFound wrapped with the name.
func (r Repository) Load(name string) (*core.Graph, error) {
	f, err := os.Open(r.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dimacs: %q: %w", name, ErrInstanceNotFound)
		}

		return nil, fmt.Errorf("dimacs: open %q: %w", name, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}

package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resultSuffix is appended to the graph name to form a record file name.
const resultSuffix = "_results.json"

var (
	// ErrRecordNotFound signals a store lookup for a missing record.
	ErrRecordNotFound = errors.New("results: record not found")
)

// Store reads and writes record files in one directory.
type Store struct {
	// Dir is the directory holding <name>_results.json files.
	Dir string
}

// Path returns the file path the graph name maps to.
func (s Store) Path(name string) string {
	return filepath.Join(s.Dir, name+resultSuffix)
}

// Save writes rec as indented JSON, creating the directory when missing,
// and returns the file path.
func (s Store) Save(rec Record) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("results: create %s: %w", s.Dir, err)
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return "", fmt.Errorf("results: encode %s: %w", rec.GraphName, err)
	}

	path := s.Path(rec.GraphName)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("results: write %s: %w", path, err)
	}

	return path, nil
}

// Load reads the record of the named graph.
// A missing file yields ErrRecordNotFound wrapped with the name.
func (s Store) Load(name string) (Record, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, fmt.Errorf("results: %q: %w", name, ErrRecordNotFound)
		}

		return Record{}, fmt.Errorf("results: read %q: %w", name, err)
	}

	var rec Record
	if err = json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("results: decode %q: %w", name, err)
	}

	return rec, nil
}

// LoadAll reads every record file in the directory, in file-name order.
func (s Store) LoadAll() ([]Record, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("results: list %s: %w", s.Dir, err)
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), resultSuffix) {
			continue
		}
		rec, err := s.Load(strings.TrimSuffix(e.Name(), resultSuffix))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// referenceEntry is one element of a reference benchmark file.
type referenceEntry struct {
	GraphName string `json:"graph_name"`
	NumColors *int   `json:"num_colors"`
}

// LoadReference reads a reference benchmark file (a JSON array of
// graph_name/num_colors objects) into a name-to-count map. Entries with
// a null count are skipped.
func LoadReference(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("results: read reference: %w", err)
	}

	var entries []referenceEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("results: decode reference %s: %w", path, err)
	}

	reference := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.NumColors == nil {
			continue
		}
		reference[e.GraphName] = *e.NumColors
	}

	return reference, nil
}

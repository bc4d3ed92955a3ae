package results_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kingsene19/graph-coloration/builder"
	"github.com/kingsene19/graph-coloration/coloring"
	"github.com/kingsene19/graph-coloration/results"
)

// sampleRecord builds a solved record for the named instance.
func sampleRecord(t *testing.T, name string) results.Record {
	t.Helper()

	g, err := builder.Cycle(4)
	require.NoError(t, err)

	sum := coloring.Summary{
		Algo:       coloring.AlgoDSATUR,
		Status:     coloring.StatusSolved,
		Colors:     coloring.Coloring{0, 1, 0, 1},
		ColorCount: 2,
		Duration:   250 * time.Millisecond,
		Vertices:   4,
		Edges:      4,
		Density:    2.0 / 3.0,
		Solved:     true,
	}

	return results.NewRecord(name, sum, g)
}

// TestStore_SaveLoadRoundTrip verifies a record survives the disk trip
// unchanged and lands at <name>_results.json.
func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := results.Store{Dir: t.TempDir()}
	rec := sampleRecord(t, "myciel3")

	path, err := store.Save(rec)
	require.NoError(t, err)
	require.Equal(t, store.Path("myciel3"), path)
	require.Equal(t, "myciel3_results.json", filepath.Base(path))
	require.FileExists(t, path)

	loaded, err := store.Load("myciel3")
	require.NoError(t, err)
	require.Equal(t, rec, loaded)
}

// TestStore_SaveCreatesDir verifies Save creates a missing results directory.
func TestStore_SaveCreatesDir(t *testing.T) {
	store := results.Store{Dir: filepath.Join(t.TempDir(), "out", "results")}

	_, err := store.Save(sampleRecord(t, "anna"))
	require.NoError(t, err)
	require.DirExists(t, store.Dir)
}

// TestStore_LoadMissing verifies the not-found sentinel carries the name.
func TestStore_LoadMissing(t *testing.T) {
	store := results.Store{Dir: t.TempDir()}

	_, err := store.Load("no-such-graph")
	require.ErrorIs(t, err, results.ErrRecordNotFound)
	require.ErrorContains(t, err, "no-such-graph")
}

// TestStore_LoadAll verifies record files come back in file-name order and
// unrelated files are ignored.
func TestStore_LoadAll(t *testing.T) {
	store := results.Store{Dir: t.TempDir()}

	_, err := store.Save(sampleRecord(t, "queen5_5"))
	require.NoError(t, err)
	_, err = store.Save(sampleRecord(t, "anna"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "anna.json"), []byte("{}"), 0o644))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "anna", records[0].GraphName)
	require.Equal(t, "queen5_5", records[1].GraphName)
}

// TestStore_LoadForeignRecord verifies a record file written by other
// tooling, using a legacy status, reads back as solved.
func TestStore_LoadForeignRecord(t *testing.T) {
	store := results.Store{Dir: t.TempDir()}
	raw := `{
		"graph_name": "jean",
		"status": "OPTIMAL",
		"coloring": {"1": 0, "2": 1},
		"num_colors": 10,
		"duration": 3.25,
		"num_nodes": 80,
		"edge_density": 0.08,
		"solved": false,
		"edges": [[1, 2], [2, 1]]
	}`
	require.NoError(t, os.WriteFile(store.Path("jean"), []byte(raw), 0o644))

	rec, err := store.Load("jean")
	require.NoError(t, err)
	require.True(t, rec.IsSolved())
	require.NotNil(t, rec.NumColors)
	require.Equal(t, 10, *rec.NumColors)
	require.Equal(t, map[int]int{1: 0, 2: 1}, rec.Coloring)
}

// TestLoadReference verifies the reference file parser skips null counts.
func TestLoadReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.json")
	raw := `[
		{"graph_name": "anna", "num_colors": 11},
		{"graph_name": "huck", "num_colors": 11},
		{"graph_name": "open1000", "num_colors": null}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	reference, err := results.LoadReference(path)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"anna": 11, "huck": 11}, reference)
}

// TestLoadReference_Missing verifies the error path for an absent file.
func TestLoadReference_Missing(t *testing.T) {
	_, err := results.LoadReference(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

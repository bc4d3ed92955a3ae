package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/kingsene19/graph-coloration/coloring"
	"github.com/kingsene19/graph-coloration/core"
	"github.com/kingsene19/graph-coloration/dimacs"
	"github.com/kingsene19/graph-coloration/results"
)

// Batch aggregates one run over a set of instances.
type Batch struct {
	// Total and Solved count attempted and successfully colored instances.
	Total  int
	Solved int

	// MeanDuration averages solve wall clock over all attempts.
	MeanDuration time.Duration

	// MeanColors averages the color count over solved instances.
	MeanColors float64
}

// task pairs an instance with its parsed graph.
type task struct {
	name string
	g    *core.Graph
}

// Run solves the named instances from the configured repository and saves
// one record per instance. A nil or empty names slice selects every
// instance in the directory. Instances dispatch smallest first over
// cfg.Workers concurrent solves, each under a seed derived from cfg.Seed
// and its position, so a batch is reproducible regardless of scheduling.
func Run(ctx context.Context, cfg Config, names []string) (Batch, error) {
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Batch{}, err
	}
	opts, err := cfg.solveOptions()
	if err != nil {
		return Batch{}, err
	}

	repo := dimacs.Repository{Dir: cfg.InstanceDir}
	if len(names) == 0 {
		if names, err = repo.List(); err != nil {
			return Batch{}, err
		}
	}

	tasks, err := loadTasks(repo, names)
	if err != nil {
		return Batch{}, err
	}

	store := results.Store{Dir: cfg.ResultsDir}

	var (
		mu            sync.Mutex
		batch         Batch
		totalDuration time.Duration
		totalColors   int
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers)
	for i, tk := range tasks {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o := opts
			o.Ctx = gctx
			o.Seed = coloring.DeriveSeed(cfg.Seed, uint64(i))

			sum, err := coloring.Solve(tk.g, o)
			if err != nil {
				return fmt.Errorf("runner: solve %s: %w", tk.name, err)
			}
			observeSolve(sum)

			if _, err = store.Save(results.NewRecord(tk.name, sum, tk.g)); err != nil {
				return err
			}
			logOutcome(tk, sum)

			mu.Lock()
			batch.Total++
			totalDuration += sum.Duration
			if sum.Solved {
				batch.Solved++
				totalColors += sum.ColorCount
			}
			mu.Unlock()

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return Batch{}, err
	}

	if batch.Total > 0 {
		batch.MeanDuration = totalDuration / time.Duration(batch.Total)
	}
	if batch.Solved > 0 {
		batch.MeanColors = float64(totalColors) / float64(batch.Solved)
	}
	slog.Info("batch finished",
		"total", batch.Total,
		"solved", batch.Solved,
		"mean_duration", batch.MeanDuration,
		"mean_colors", batch.MeanColors)

	return batch, nil
}

// loadTasks parses every named instance and orders them smallest first.
func loadTasks(repo dimacs.Repository, names []string) ([]task, error) {
	tasks := make([]task, 0, len(names))
	for _, name := range names {
		g, err := repo.Load(name)
		if err != nil {
			return nil, err
		}
		if fi, err := os.Stat(repo.Path(name)); err == nil {
			slog.Debug("instance loaded",
				"instance", name,
				"size", humanize.Bytes(uint64(fi.Size())),
				"vertices", g.VertexCount())
		}
		tasks = append(tasks, task{name: name, g: g})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].g.VertexCount() < tasks[j].g.VertexCount()
	})

	return tasks, nil
}

// logOutcome writes the per-instance result line.
func logOutcome(tk task, sum coloring.Summary) {
	if sum.Solved {
		slog.Info("instance solved",
			"instance", tk.name,
			"vertices", tk.g.VertexCount(),
			"edges", humanize.Comma(int64(tk.g.EdgeCount())),
			"colors", sum.ColorCount,
			"duration", sum.Duration)

		return
	}

	slog.Warn("instance not solved within budget",
		"instance", tk.name,
		"vertices", tk.g.VertexCount(),
		"edges", humanize.Comma(int64(tk.g.EdgeCount())),
		"duration", sum.Duration)
}

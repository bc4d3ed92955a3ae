// Command-line interface to the graph coloration toolkit.
// Provides dataset bootstrap, batch solving, result comparison and a
// directory watch mode on top of the library packages.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kingsene19/graph-coloration/dataset"
	"github.com/kingsene19/graph-coloration/results"
	"github.com/kingsene19/graph-coloration/runner"
)

var (
	// Path to the TOML config file; flags below override its values.
	configPath = flag.String("config", "", "")

	// Number of concurrent solves.
	workers = flag.Int("workers", 0, "")

	// Per-instance wall-clock budget in seconds.
	timeLimit = flag.Int("timelimit", 0, "")

	// Engine name: probabilistic or dsatur.
	algo = flag.String("algo", "", "")

	// Parent seed for the batch.
	seed = flag.Int64("seed", 0, "")

	// Constructor restarts of the probabilistic engine.
	trials = flag.Int("trials", 0, "")

	// Observability listen address; empty disables the endpoint.
	metricsAddr = flag.String("metrics", "", "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	showHelp = flag.Bool("help", false, "")
)

const VERSION = "1.0.0"

const helpMessage = `
coloration is a command-line interface to a heuristic graph-coloring toolkit
for DIMACS benchmark instances

Usage: coloration [options] <command>

      -config    =string   Path to TOML config file.
      -workers   =number   Number of concurrent solves.
      -timelimit =number   Per-instance wall-clock budget in seconds.
      -algo      =string   Engine: probabilistic or dsatur.
      -seed      =number   Parent seed for the batch.
      -trials    =number   Constructor restarts of the probabilistic engine.
      -metrics   =string   Observability listen address (/metrics, /health).
      -verbose   (flag)    Run in verbose mode.
  -h, -help      (flag)    Show help message

Commands:

	fetch                      download the benchmark archive into the instance dir
	solve   [names...]         solve the named instances (all when omitted)
	compare <reference.json>   score saved results against a reference file
	analyze <dirA> <dirB>      contrast two result directories
	watch                      solve new instances as their files appear
	version
`

func main() {
	flag.BoolVar(showHelp, "h", false, "")
	flag.Usage = func() { fmt.Print(helpMessage) }
	flag.Parse()

	if flag.NArg() >= 1 && strings.ToLower(flag.Arg(0)) == "help" {
		*showHelp = true
	}
	if *showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	runner.SetupLogging(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.MetricsAddr != "" {
		srv := runner.ServeMetrics(cfg.MetricsAddr)
		defer srv.Stop(context.Background())
	}

	if err := dispatch(ctx, cfg, strings.ToLower(flag.Arg(0)), flag.Args()[1:]); err != nil {
		slog.Error("command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (when given) with flag overrides.
func loadConfig() (runner.Config, error) {
	cfg := runner.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = runner.Load(*configPath); err != nil {
			return runner.Config{}, err
		}
	}

	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *timeLimit != 0 {
		cfg.TimeLimitSeconds = *timeLimit
	}
	if *algo != "" {
		cfg.Algorithm = *algo
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *trials != 0 {
		cfg.Trials = *trials
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *runVerbose {
		cfg.Log.Verbose = true
	}

	return cfg, nil
}

func dispatch(ctx context.Context, cfg runner.Config, command string, args []string) error {
	switch command {
	case "fetch":
		return runFetch(ctx, cfg)
	case "solve":
		return runSolve(ctx, cfg, args)
	case "compare":
		if len(args) != 1 {
			return fmt.Errorf("compare requires a reference file: coloration compare <reference.json>")
		}
		return runCompare(cfg, args[0])
	case "analyze":
		if len(args) != 2 {
			return fmt.Errorf("analyze requires two result directories: coloration analyze <dirA> <dirB>")
		}
		return runAnalyze(args[0], args[1])
	case "watch":
		return runner.Watch(ctx, cfg)
	case "version":
		fmt.Printf("coloration v%s\n", VERSION)
		return nil
	default:
		return fmt.Errorf("unknown command %q; run \"coloration help\"", command)
	}
}

func runFetch(ctx context.Context, cfg runner.Config) error {
	names, err := dataset.Fetch(ctx, dataset.Options{Dir: cfg.InstanceDir})
	if err != nil {
		return err
	}
	fmt.Printf("fetched %d files into %s\n", len(names), cfg.InstanceDir)

	return nil
}

func runSolve(ctx context.Context, cfg runner.Config, names []string) error {
	batch, err := runner.Run(ctx, cfg, names)
	if err != nil {
		return err
	}
	fmt.Printf("solved %d/%d instances, mean duration %s, mean colors %.2f\n",
		batch.Solved, batch.Total, batch.MeanDuration, batch.MeanColors)

	return nil
}

func runCompare(cfg runner.Config, referencePath string) error {
	reference, err := results.LoadReference(referencePath)
	if err != nil {
		return err
	}
	records, err := results.Store{Dir: cfg.ResultsDir}.LoadAll()
	if err != nil {
		return err
	}

	cmp := results.Compare(reference, records)
	fmt.Printf("same %d, better %d, worse %d, missing %d\n",
		cmp.Same, cmp.Better, cmp.Worse, len(cmp.Missing))
	for _, name := range cmp.BetterGraphs {
		fmt.Printf("  better: %s\n", name)
	}
	for _, name := range cmp.WorseGraphs {
		fmt.Printf("  worse:  %s\n", name)
	}
	for _, name := range cmp.Missing {
		fmt.Printf("  missing: %s\n", name)
	}

	return nil
}

func runAnalyze(dirA, dirB string) error {
	a, err := results.Store{Dir: dirA}.LoadAll()
	if err != nil {
		return err
	}
	b, err := results.Store{Dir: dirB}.LoadAll()
	if err != nil {
		return err
	}

	an := results.Analyze(a, b, dirA, dirB)
	fmt.Printf("common %d (both solved %d, only %s %d, only %s %d)\n",
		an.TotalCommon, an.BothSolved, an.AName, an.OnlyA, an.BName, an.OnlyB)
	fmt.Printf("%s better %d, %s better %d\n", an.AName, an.ABetter, an.BName, an.BBetter)
	fmt.Printf("mean duration: %s %.3fs, %s %.3fs\n",
		an.AName, an.MeanDurationA, an.BName, an.MeanDurationB)
	fmt.Printf("mean color ratio: %.1f%%\n", an.MeanColorRatioPct)

	return nil
}

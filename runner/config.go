package runner

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kingsene19/graph-coloration/coloring"
)

// Defaults applied for config fields left at their zero value.
const (
	DefaultWorkers          = 8
	DefaultTimeLimitSeconds = 600
	DefaultDebounceMS       = 500

	defaultInstanceDir = "instances"
	defaultResultsDir  = "results"

	defaultLogMaxSize    = 100 // megabytes
	defaultLogMaxAge     = 30  // days
	defaultLogMaxBackups = 3
)

// Config drives a batch run. Zero fields take the documented defaults, so
// an empty TOML file and a bare Config{} both yield a working setup once
// they pass through Load or Run.
type Config struct {
	// InstanceDir holds the DIMACS .col files.
	InstanceDir string `toml:"instance_dir"`

	// ResultsDir receives one <name>_results.json file per instance.
	ResultsDir string `toml:"results_dir"`

	// Workers bounds concurrent solves.
	Workers int `toml:"workers"`

	// TimeLimitSeconds bounds one solve's wall clock.
	TimeLimitSeconds int `toml:"time_limit_seconds"`

	// Trials and MaxRounds tune the probabilistic engine; zero selects
	// the engine defaults.
	Trials    int `toml:"trials"`
	MaxRounds int `toml:"max_rounds"`

	// Seed is the parent seed. Every instance in a batch solves under a
	// seed derived from it and the instance's position, so a batch is
	// reproducible regardless of worker scheduling.
	Seed int64 `toml:"seed"`

	// Algorithm names the engine: "probabilistic" or "dsatur".
	Algorithm string `toml:"algorithm"`

	// MetricsAddr is the observability listen address; empty disables
	// the endpoint.
	MetricsAddr string `toml:"metrics_addr"`

	// DebounceMS is how long the watcher lets an instance settle after
	// its last event before solving it.
	DebounceMS int `toml:"debounce_ms"`

	// Log configures the rotating log sink.
	Log LogConfig `toml:"log"`
}

// LogConfig carries the lumberjack rotation knobs.
type LogConfig struct {
	// File is the log path; empty logs to stdout without rotation.
	File string `toml:"file"`

	MaxSize    int `toml:"max_size"` // megabytes
	MaxAge     int `toml:"max_age"`  // days
	MaxBackups int `toml:"max_backups"`

	// Verbose lowers the log level to debug.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the configuration a run uses without a config file.
func DefaultConfig() Config {
	var cfg Config
	applyDefaults(&cfg)

	return cfg
}

// Load reads a TOML config file, fills defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runner: read config: %w", err)
	}

	var cfg Config
	if _, err = toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("runner: parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err = validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.InstanceDir) == "" {
		cfg.InstanceDir = defaultInstanceDir
	}
	if strings.TrimSpace(cfg.ResultsDir) == "" {
		cfg.ResultsDir = defaultResultsDir
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.TimeLimitSeconds == 0 {
		cfg.TimeLimitSeconds = DefaultTimeLimitSeconds
	}
	if cfg.Trials == 0 {
		cfg.Trials = coloring.DefaultTrials
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = coloring.DefaultMaxRounds
	}
	if strings.TrimSpace(cfg.Algorithm) == "" {
		cfg.Algorithm = coloring.AlgoProbabilistic.String()
	}
	if cfg.DebounceMS == 0 {
		cfg.DebounceMS = DefaultDebounceMS
	}
	if cfg.Log.MaxSize == 0 {
		cfg.Log.MaxSize = defaultLogMaxSize
	}
	if cfg.Log.MaxAge == 0 {
		cfg.Log.MaxAge = defaultLogMaxAge
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaultLogMaxBackups
	}
}

func validate(cfg Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("runner: workers must be positive, got %d", cfg.Workers)
	}
	if cfg.TimeLimitSeconds < 0 {
		return fmt.Errorf("runner: time_limit_seconds must not be negative, got %d", cfg.TimeLimitSeconds)
	}
	if cfg.Trials < 0 {
		return fmt.Errorf("runner: trials must not be negative, got %d", cfg.Trials)
	}
	if cfg.MaxRounds < 0 {
		return fmt.Errorf("runner: max_rounds must not be negative, got %d", cfg.MaxRounds)
	}
	if cfg.DebounceMS < 0 {
		return fmt.Errorf("runner: debounce_ms must not be negative, got %d", cfg.DebounceMS)
	}
	if _, err := coloring.ParseAlgorithm(cfg.Algorithm); err != nil {
		return fmt.Errorf("runner: algorithm %q: %w", cfg.Algorithm, err)
	}

	return nil
}

// solveOptions maps the config onto engine options.
func (c Config) solveOptions() (coloring.Options, error) {
	algo, err := coloring.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return coloring.Options{}, fmt.Errorf("runner: algorithm %q: %w", c.Algorithm, err)
	}

	opts := coloring.DefaultOptions()
	opts.Algo = algo
	opts.Seed = c.Seed
	opts.TimeLimit = time.Duration(c.TimeLimitSeconds) * time.Second
	opts.Trials = c.Trials
	opts.MaxRounds = c.MaxRounds

	return opts, nil
}

// debounce returns the watcher settle window.
func (c Config) debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

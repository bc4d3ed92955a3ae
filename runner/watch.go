package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch solves .col files as they appear in the instance directory.
// Events for an instance debounce for cfg.DebounceMS so a file mid-copy
// settles before its solve, and each instance solves at most once per
// watch. Returns nil when ctx ends.
func Watch(ctx context.Context, cfg Config) error {
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("runner: watcher: %w", err)
	}
	defer w.Close()

	if err = w.Add(cfg.InstanceDir); err != nil {
		return fmt.Errorf("runner: watch %s: %w", cfg.InstanceDir, err)
	}
	slog.Info("watching instance directory", "dir", cfg.InstanceDir)

	var (
		mu      sync.Mutex
		runMu   sync.Mutex
		pending = make(map[string]struct{})
		seen    = make(map[string]bool)
		timer   *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	flush := func() {
		mu.Lock()
		names := make([]string, 0, len(pending))
		for name := range pending {
			names = append(names, name)
			seen[name] = true
		}
		pending = make(map[string]struct{})
		mu.Unlock()

		if len(names) == 0 {
			return
		}
		sort.Strings(names)

		// One batch at a time; a second flush waits for the pool to drain.
		runMu.Lock()
		defer runMu.Unlock()
		if _, err := Run(ctx, cfg, names); err != nil {
			slog.Error("watch batch failed", "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if filepath.Ext(ev.Name) != ".col" {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(ev.Name), ".col")
			if name == "" {
				continue
			}

			mu.Lock()
			if !seen[name] {
				pending[name] = struct{}{}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(cfg.debounce(), flush)
			}
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}

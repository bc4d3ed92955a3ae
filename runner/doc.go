// Package runner executes batch coloring jobs over a DIMACS instance
// directory: TOML configuration, rotating logs, Prometheus metrics, a
// bounded worker pool and a directory watcher that solves instances as
// they appear.
package runner

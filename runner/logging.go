package runner

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// SetupLogging builds the process logger from the config and installs it
// as the slog default. An empty log file keeps plain stdout logging;
// otherwise lines go to a size- and age-rotated file.
func SetupLogging(cfg Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Log.Verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	if cfg.Log.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize, // megabytes
			MaxAge:     cfg.Log.MaxAge,  // days
			MaxBackups: cfg.Log.MaxBackups,
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/maartenor/photo-organizer/internal/audit"
	"github.com/maartenor/photo-organizer/internal/config"
	"github.com/maartenor/photo-organizer/internal/deps"
	"github.com/maartenor/photo-organizer/internal/logging"
	"github.com/maartenor/photo-organizer/internal/sweep"
)

// run performs one full organizing run. Setup failures (bad source, target,
// lock, or audit store) abort before any file is touched; everything after
// that is contained per file by the sweep.
func run(cmd *cobra.Command, source, target, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  resolveFormat(cfg.Logging.Format),
		LogFile: cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("source directory does not exist or is not accessible: %s: %w", source, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", source)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("cannot access or create target directory: %s: %w", target, err)
	}

	stateDir := filepath.Join(target, cfg.Folders.State)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("cannot create state directory: %w", err)
	}

	lock := flock.New(filepath.Join(stateDir, "organizer.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another organizer run is already active for %s", target)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	store, err := audit.Open(filepath.Join(stateDir, "file_organizer.db"), logger)
	if err != nil {
		return fmt.Errorf("initialize audit log: %w", err)
	}
	defer store.Close()

	for _, status := range deps.CheckBinaries(deps.Default(cfg.Probe.Binary)) {
		if !status.Available {
			logger.Warn("optional tool unavailable, fallback degraded",
				logging.String("tool", status.Name),
				logging.String("detail", status.Detail),
			)
		}
	}

	runLogger := logger.With(logging.String("run_id", uuid.NewString()))
	runner := sweep.New(cfg, store, runLogger, source, target)
	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
	} else {
		runLogger.Info("run completed",
			logging.Int("organized", summary.Organized),
			logging.Int("resorted", summary.Resorted),
			logging.Int("needs_sort", summary.Remaining),
			logging.Int("unprocessable", summary.Unprocessable),
			logging.Int("failed", summary.Failed),
		)
	}
	return nil
}

// resolveFormat maps the "auto" log format to console on a terminal and
// JSON elsewhere.
func resolveFormat(format string) string {
	if format != "auto" {
		return format
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "console"
	}
	return "json"
}

package sweep

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/maartenor/photo-organizer/internal/audit"
	"github.com/maartenor/photo-organizer/internal/classify"
	"github.com/maartenor/photo-organizer/internal/config"
	"github.com/maartenor/photo-organizer/internal/evidence"
	"github.com/maartenor/photo-organizer/internal/fileutil"
	"github.com/maartenor/photo-organizer/internal/logging"
	"github.com/maartenor/photo-organizer/internal/route"
)

// Summary counts the dispositions of one run.
type Summary struct {
	Organized     int
	NeedsSort     int
	Unprocessable int
	Failed        int
	Resorted      int
	Remaining     int
}

// Runner executes the organizing sweeps for one source/target pair.
type Runner struct {
	cfg    config.Config
	store  *audit.Store
	logger *slog.Logger
	layout route.Layout
	source string
}

// New constructs a runner. The layout is derived from the configured folder
// names under the target root.
func New(cfg config.Config, store *audit.Store, logger *slog.Logger, source, target string) *Runner {
	return &Runner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "sweep"),
		layout: route.Layout{
			Root:             target,
			ToSortDir:        cfg.Folders.ToSort,
			UnprocessableDir: cfg.Folders.Unprocessable,
		},
		source: source,
	}
}

// Run executes both phases sequentially and returns the run summary. Only
// failure to set up the target layout is fatal; per-file errors are
// recorded and skipped.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	for _, dir := range []string{r.layout.Root, r.layout.ToSort(), r.layout.Unprocessable()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("ensure target layout: %w", err)
		}
	}

	var summary Summary
	r.primarySweep(ctx, &summary)
	r.resortSweep(ctx, &summary)
	return summary, nil
}

func (r *Runner) primarySweep(ctx context.Context, summary *Summary) {
	r.logger.Info("starting primary sweep", logging.String("source", r.source))

	targetRoot, _ := filepath.Abs(r.layout.Root)
	walkErr := filepath.WalkDir(r.source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.logger.Warn("cannot visit path", logging.String("path", path), logging.Error(err))
			return nil
		}
		if d.IsDir() {
			// Never descend into our own output when the target nests
			// inside the source tree.
			if abs, absErr := filepath.Abs(path); absErr == nil && abs == targetRoot {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			r.logger.Debug("skipping non-regular file", logging.String("path", path))
			return nil
		}
		r.sweepFile(ctx, path, summary)
		return nil
	})
	if walkErr != nil {
		r.logger.Error("primary sweep aborted", logging.Error(walkErr))
		return
	}
	r.logger.Info("primary sweep completed",
		logging.Int("organized", summary.Organized),
		logging.Int("needs_sort", summary.NeedsSort),
		logging.Int("unprocessable", summary.Unprocessable),
		logging.Int("failed", summary.Failed),
	)
}

// sweepFile processes one file to a terminal disposition. Any failure,
// including a panic out of a metadata decoder, ends in a quarantine attempt
// so the file is always accounted for.
func (r *Runner) sweepFile(ctx context.Context, path string, summary *Summary) {
	name := filepath.Base(path)
	defer func() {
		if p := recover(); p != nil {
			r.quarantine(ctx, path, name, fmt.Errorf("panic: %v", p), summary)
		}
	}()

	category := classify.Detect(path)

	var date evidence.Date
	var hasDate bool
	switch category {
	case classify.Image:
		date, hasDate = evidence.FromImage(path)
	case classify.Video:
		probeCtx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Probe.TimeoutSeconds)*time.Second)
		date, hasDate = evidence.FromVideo(probeCtx, r.cfg.Probe.Binary, path)
		cancel()
	}

	outcome := route.Decide(category, date, hasDate)
	finalPath, err := fileutil.MoveFile(path, outcome.DestinationDir(r.layout))
	if err != nil {
		r.logger.Error("move failed", logging.String("file", name), logging.Error(err))
		r.quarantine(ctx, path, name, err, summary)
		return
	}

	r.recordProcess(ctx, name, finalPath)
	switch outcome.Disposition {
	case route.Organized:
		summary.Organized++
		r.logger.Info("organized",
			logging.String("file", name),
			logging.String("category", category.String()),
			logging.String("month", outcome.Date.String()),
		)
	case route.NeedsSort:
		summary.NeedsSort++
		r.recordIssue(ctx, name, audit.WarnNoDateMetadata, 0,
			fmt.Sprintf("no date metadata found for %s file: %s", category, name))
		r.logger.Warn("no date evidence, holding for resort", logging.String("file", name))
	case route.Unprocessable:
		summary.Unprocessable++
		r.recordIssue(ctx, name, audit.WarnUnsupportedFile, 0,
			fmt.Sprintf("file is neither image nor video: %s", name))
		r.logger.Warn("quarantined unsupported file", logging.String("file", name))
	}
}

// quarantine attempts the secondary move into the unprocessable folder. If
// that also fails the file stays where it is with a recorded move error.
func (r *Runner) quarantine(ctx context.Context, path, name string, cause error, summary *Summary) {
	finalPath, err := fileutil.MoveFile(path, r.layout.Unprocessable())
	if err != nil {
		summary.Failed++
		r.recordIssue(ctx, name, 0, audit.CodeMoveError,
			fmt.Sprintf("failed to move file to unprocessable folder: %v", err))
		r.logger.Error("file left in place", logging.String("file", name), logging.Error(err))
	} else {
		summary.Unprocessable++
		r.recordProcess(ctx, name, finalPath)
	}
	r.recordIssue(ctx, name, 0, audit.CodeUnprocessableFile,
		fmt.Sprintf("error processing file: %v", cause))
}

// resortSweep retries the holding folder with filename evidence only. Files
// without a filename date stay put for manual handling or a future run.
func (r *Runner) resortSweep(ctx context.Context, summary *Summary) {
	toSort := r.layout.ToSort()
	r.logger.Info("starting resort sweep", logging.String("folder", toSort))

	entries, err := os.ReadDir(toSort)
	if err != nil {
		r.logger.Warn("cannot read holding folder", logging.Error(err))
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			r.logger.Debug("skipping non-regular entry", logging.String("name", entry.Name()))
			continue
		}
		name := entry.Name()
		date, ok := evidence.FromFilename(name)
		if !ok {
			summary.Remaining++
			r.logger.Debug("no date in filename", logging.String("file", name))
			continue
		}

		finalPath, err := fileutil.MoveFile(filepath.Join(toSort, name), r.layout.DatedDir(date))
		if err != nil {
			summary.Failed++
			r.recordIssue(ctx, name, 0, audit.CodeMoveError,
				fmt.Sprintf("failed to move file from holding folder: %v", err))
			r.logger.Error("resort move failed", logging.String("file", name), logging.Error(err))
			continue
		}

		summary.Resorted++
		r.recordProcess(ctx, name, finalPath)
		r.recordIssue(ctx, name, audit.WarnNoDateMetadata, 0,
			fmt.Sprintf("moved based on filename timestamp: %s", date))
		r.logger.Info("resorted from filename evidence",
			logging.String("file", name),
			logging.String("month", date.String()),
		)
	}
	r.logger.Info("resort sweep completed",
		logging.Int("resorted", summary.Resorted),
		logging.Int("remaining", summary.Remaining),
	)
}

// recordProcess and recordIssue tolerate audit failures: the physical
// disposition of a file is authoritative even if its log entry is lost.
func (r *Runner) recordProcess(ctx context.Context, name, targetPath string) {
	if err := r.store.RecordProcess(ctx, name, targetPath); err != nil {
		r.logger.Warn("audit write failed", logging.String("file", name), logging.Error(err))
	}
}

func (r *Runner) recordIssue(ctx context.Context, name string, warning audit.WarningCode, code audit.ErrorCode, description string) {
	if err := r.store.RecordIssue(ctx, name, warning, code, description); err != nil {
		r.logger.Warn("audit write failed", logging.String("file", name), logging.Error(err))
	}
}

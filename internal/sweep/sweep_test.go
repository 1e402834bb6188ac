package sweep_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/maartenor/photo-organizer/internal/audit"
	"github.com/maartenor/photo-organizer/internal/config"
	"github.com/maartenor/photo-organizer/internal/evidence"
	"github.com/maartenor/photo-organizer/internal/logging"
	"github.com/maartenor/photo-organizer/internal/probe"
	"github.com/maartenor/photo-organizer/internal/sweep"
	"github.com/maartenor/photo-organizer/internal/testsupport"
)

func newRunner(t *testing.T, source, target string, store *audit.Store) *sweep.Runner {
	t.Helper()
	return sweep.New(config.Default(), store, logging.NewNop(), source, target)
}

func TestRunQuarantinesUnsupportedFile(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), []byte("plain text"))

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Unprocessable != 1 {
		t.Fatalf("unprocessable = %d, want 1", summary.Unprocessable)
	}
	if _, err := os.Stat(filepath.Join(target, "unprocessable", "notes.txt")); err != nil {
		t.Fatalf("file not quarantined: %v", err)
	}

	issues, err := store.Issues(context.Background())
	if err != nil {
		t.Fatalf("Issues: %v", err)
	}
	if len(issues) != 1 || issues[0].Warning != audit.WarnUnsupportedFile {
		t.Fatalf("issues = %+v, want one unsupported-file warning", issues)
	}
	events, err := store.ProcessEvents(context.Background())
	if err != nil {
		t.Fatalf("ProcessEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("process events = %d, want 1", len(events))
	}
}

func TestRunHoldsImageWithoutMetadataThenResortsByFilename(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	// Classified image by extension, but the content carries no EXIF.
	testsupport.WriteFile(t, filepath.Join(source, "nested", "IMG_20230714.jpg"), []byte("junk"))

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.NeedsSort != 1 || summary.Resorted != 1 {
		t.Fatalf("summary = %+v, want one held then resorted", summary)
	}
	if _, err := os.Stat(filepath.Join(target, "2023", "07", "IMG_20230714.jpg")); err != nil {
		t.Fatalf("file not resorted into 2023/07: %v", err)
	}

	issues, err := store.Issues(context.Background())
	if err != nil {
		t.Fatalf("Issues: %v", err)
	}
	// Both the hold and the filename-derived resort record warning 10.
	var noDateWarnings int
	for _, issue := range issues {
		if issue.Warning == audit.WarnFilenameDate {
			t.Fatalf("issue %+v recorded warning 30, want 10 for resort moves", issue)
		}
		if issue.Warning == audit.WarnNoDateMetadata {
			noDateWarnings++
		}
	}
	if noDateWarnings != 2 {
		t.Fatalf("issues = %+v, want two no-date warnings", issues)
	}
}

func TestRunLeavesUndatableFileInHoldingFolder(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "party.jpg"), []byte("junk"))

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.NeedsSort != 1 || summary.Remaining != 1 || summary.Resorted != 0 {
		t.Fatalf("summary = %+v, want the file held and remaining", summary)
	}
	if _, err := os.Stat(filepath.Join(target, "to_sort", "party.jpg")); err != nil {
		t.Fatalf("file missing from holding folder: %v", err)
	}
}

func TestRunOrganizesVideoFromProbeEvidence(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "clip.mp4"), []byte("junk"))

	restore := evidence.SetProbeForTests(func(context.Context, string, string) (probe.Result, error) {
		return probe.Result{
			Format: probe.Format{Tags: map[string]string{"creation_time": "2019-03-10T14:00:00.000000Z"}},
		}, nil
	})
	defer restore()

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Organized != 1 {
		t.Fatalf("organized = %d, want 1", summary.Organized)
	}
	if _, err := os.Stat(filepath.Join(target, "2019", "03", "clip.mp4")); err != nil {
		t.Fatalf("video not organized into 2019/03: %v", err)
	}
}

func TestRunIsIdempotentOnEmptySource(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), []byte("text"))

	runner := newRunner(t, source, target, store)
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	eventsAfterFirst, err := store.ProcessEvents(context.Background())
	if err != nil {
		t.Fatalf("ProcessEvents: %v", err)
	}

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary.Organized+summary.NeedsSort+summary.Unprocessable+summary.Resorted+summary.Failed != 0 {
		t.Fatalf("second run moved files: %+v", summary)
	}
	eventsAfterSecond, err := store.ProcessEvents(context.Background())
	if err != nil {
		t.Fatalf("ProcessEvents: %v", err)
	}
	if len(eventsAfterSecond) != len(eventsAfterFirst) {
		t.Fatalf("second run appended process events: %d -> %d", len(eventsAfterFirst), len(eventsAfterSecond))
	}
}

func TestRunQuarantinesWhenDatedMoveFails(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "clip.mp4"), []byte("junk"))
	// A regular file where the year directory should go makes MkdirAll fail.
	testsupport.WriteFile(t, filepath.Join(target, "2019"), []byte("in the way"))

	restore := evidence.SetProbeForTests(func(context.Context, string, string) (probe.Result, error) {
		return probe.Result{
			Format: probe.Format{Tags: map[string]string{"creation_time": "2019-03-10 14:00:00"}},
		}, nil
	})
	defer restore()

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Unprocessable != 1 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want one quarantined file", summary)
	}
	if _, err := os.Stat(filepath.Join(target, "unprocessable", "clip.mp4")); err != nil {
		t.Fatalf("file not relocated to quarantine: %v", err)
	}

	issues, err := store.Issues(context.Background())
	if err != nil {
		t.Fatalf("Issues: %v", err)
	}
	var sawProcessingError bool
	for _, issue := range issues {
		if issue.Code == audit.CodeUnprocessableFile {
			sawProcessingError = true
		}
	}
	if !sawProcessingError {
		t.Fatalf("issues = %+v, want an unprocessable-file error", issues)
	}
}

func TestRunLeavesFileInPlaceWhenQuarantineAlsoFails(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	sourcePath := filepath.Join(source, "clip.mp4")
	testsupport.WriteFile(t, sourcePath, []byte("junk"))
	// Block the dated move with a file where the year directory should go,
	// and the quarantine move with a directory squatting on the destination
	// filename.
	testsupport.WriteFile(t, filepath.Join(target, "2019"), []byte("in the way"))
	if err := os.MkdirAll(filepath.Join(target, "unprocessable", "clip.mp4"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	restore := evidence.SetProbeForTests(func(context.Context, string, string) (probe.Result, error) {
		return probe.Result{
			Format: probe.Format{Tags: map[string]string{"creation_time": "2019-03-10 14:00:00"}},
		}, nil
	})
	defer restore()

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Failed != 1 || summary.Unprocessable != 0 {
		t.Fatalf("summary = %+v, want one failed file", summary)
	}
	if _, err := os.Stat(sourcePath); err != nil {
		t.Fatalf("file should remain at source path: %v", err)
	}

	issues, err := store.Issues(context.Background())
	if err != nil {
		t.Fatalf("Issues: %v", err)
	}
	var sawMoveError, sawProcessingError bool
	for _, issue := range issues {
		switch issue.Code {
		case audit.CodeMoveError:
			sawMoveError = true
		case audit.CodeUnprocessableFile:
			sawProcessingError = true
		}
	}
	if !sawMoveError || !sawProcessingError {
		t.Fatalf("issues = %+v, want move-error and unprocessable-file errors", issues)
	}
}

func TestResortMoveFailureLeavesFileAndRecordsError(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(target, "to_sort", "2021-03-05.jpg"), []byte("junk"))
	testsupport.WriteFile(t, filepath.Join(target, "2021"), []byte("in the way"))

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Failed != 1 {
		t.Fatalf("failed = %d, want 1", summary.Failed)
	}
	if _, err := os.Stat(filepath.Join(target, "to_sort", "2021-03-05.jpg")); err != nil {
		t.Fatalf("file should remain in holding folder: %v", err)
	}

	issues, err := store.Issues(context.Background())
	if err != nil {
		t.Fatalf("Issues: %v", err)
	}
	var sawMoveError bool
	for _, issue := range issues {
		if issue.Code == audit.CodeMoveError {
			sawMoveError = true
		}
	}
	if !sawMoveError {
		t.Fatalf("issues = %+v, want a move error", issues)
	}
}

func TestResortSkipsNonRegularEntries(t *testing.T) {
	source, target := testsupport.Dirs(t)
	store := testsupport.MustOpenStore(t, t.TempDir())
	toSort := filepath.Join(target, "to_sort")
	if err := os.MkdirAll(toSort, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	realFile := filepath.Join(t.TempDir(), "elsewhere.jpg")
	testsupport.WriteFile(t, realFile, []byte("junk"))
	if err := os.Symlink(realFile, filepath.Join(toSort, "2021-03-05.jpg")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	summary, err := newRunner(t, source, target, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Resorted != 0 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want the symlink left alone", summary)
	}
	if _, err := os.Lstat(filepath.Join(toSort, "2021-03-05.jpg")); err != nil {
		t.Fatalf("symlink should remain in holding folder: %v", err)
	}
}

func TestRunSkipsTargetNestedInSource(t *testing.T) {
	source, _ := testsupport.Dirs(t)
	target := filepath.Join(source, "organized")
	store := testsupport.MustOpenStore(t, t.TempDir())
	testsupport.WriteFile(t, filepath.Join(source, "notes.txt"), []byte("text"))

	runner := newRunner(t, source, target, store)
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// The quarantined file now lives under the target inside the source. A
	// second run must not pick it up again.
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary.Unprocessable != 0 {
		t.Fatalf("second run reprocessed quarantined file: %+v", summary)
	}
}

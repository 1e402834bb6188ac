package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/maartenor/photo-organizer/internal/logging"
)

// ProcessEvent records one successful move.
type ProcessEvent struct {
	Filename     string
	TargetFolder string
	Timestamp    time.Time
}

// Issue records a warning or error observed while processing a file. A zero
// code means the column is absent.
type Issue struct {
	Filename    string
	Warning     WarningCode
	Code        ErrorCode
	Description string
	Timestamp   time.Time
}

// Store manages the audit log backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the audit database at path and applies
// migrations. Opening an already-initialized store is a no-op beyond the
// connection.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure audit dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, logger: logging.NewComponentLogger(logger, "audit")}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordProcess appends a process event, timestamped in UTC at call time. A
// failed insert is itself recorded as a database-error issue; the returned
// error lets the caller log it, not abort the run.
func (s *Store) RecordProcess(ctx context.Context, filename, targetFolder string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO process_log (filename, target_folder, processing_timestamp_utc) VALUES (?, ?, ?)`,
		filename,
		targetFolder,
		timestamp,
	)
	if err != nil {
		if issueErr := s.RecordIssue(ctx, filename, 0, CodeDatabaseError, fmt.Sprintf("failed to record process event: %v", err)); issueErr != nil {
			s.logger.Error("audit write failed twice", logging.String("filename", filename), logging.Error(issueErr))
		}
		return fmt.Errorf("record process: %w", err)
	}
	return nil
}

// RecordIssue appends an issue event, timestamped in UTC at call time. A
// zero warning or error code is stored as NULL.
func (s *Store) RecordIssue(ctx context.Context, filename string, warning WarningCode, code ErrorCode, description string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO issues (filename, warning_code, error_code, issue_description, processing_timestamp_utc)
         VALUES (?, ?, ?, ?, ?)`,
		filename,
		nullableCode(int(warning)),
		nullableCode(int(code)),
		description,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("record issue: %w", err)
	}
	return nil
}

// ProcessEvents returns all recorded process events in insertion order.
func (s *Store) ProcessEvents(ctx context.Context) ([]ProcessEvent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT filename, target_folder, processing_timestamp_utc FROM process_log ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query process events: %w", err)
	}
	defer rows.Close()

	var events []ProcessEvent
	for rows.Next() {
		var event ProcessEvent
		var timestamp string
		if err := rows.Scan(&event.Filename, &event.TargetFolder, &timestamp); err != nil {
			return nil, fmt.Errorf("scan process event: %w", err)
		}
		event.Timestamp = parseTimestamp(timestamp)
		events = append(events, event)
	}
	return events, rows.Err()
}

// Issues returns all recorded issue events in insertion order.
func (s *Store) Issues(ctx context.Context) ([]Issue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT filename, warning_code, error_code, issue_description, processing_timestamp_utc FROM issues ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var issue Issue
		var warning, code sql.NullInt64
		var description sql.NullString
		var timestamp string
		if err := rows.Scan(&issue.Filename, &warning, &code, &description, &timestamp); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		if warning.Valid {
			issue.Warning = WarningCode(warning.Int64)
		}
		if code.Valid {
			issue.Code = ErrorCode(code.Int64)
		}
		issue.Description = description.String
		issue.Timestamp = parseTimestamp(timestamp)
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

func nullableCode(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

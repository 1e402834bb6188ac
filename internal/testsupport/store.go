package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/maartenor/photo-organizer/internal/audit"
	"github.com/maartenor/photo-organizer/internal/logging"
)

// MustOpenStore opens an audit store under dir for tests and registers
// cleanup.
func MustOpenStore(t testing.TB, dir string) *audit.Store {
	t.Helper()

	store, err := audit.Open(filepath.Join(dir, "file_organizer.db"), logging.NewNop())
	if err != nil {
		t.Fatalf("audit.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// StubFFprobe writes an executable that prints payload regardless of its
// arguments and returns its path, for use as a probe binary in tests.
func StubFFprobe(t testing.TB, payload string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\ncat <<'PAYLOAD'\n" + payload + "\nPAYLOAD\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write ffprobe stub: %v", err)
	}
	return path
}

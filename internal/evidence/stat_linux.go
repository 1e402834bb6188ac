//go:build linux

package evidence

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// statCandidateTimes returns filesystem timestamps in preference order:
// the file's birth time where the kernel and filesystem report one, then
// the modification time.
func statCandidateTimes(path string) []time.Time {
	var candidates []time.Time

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec > 0 {
			candidates = append(candidates, time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)))
		}
	}

	if info, err := os.Stat(path); err == nil {
		candidates = append(candidates, info.ModTime())
	}
	return candidates
}

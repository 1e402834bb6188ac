//go:build !linux

package evidence

import (
	"os"
	"time"
)

// statCandidateTimes returns the modification time; birth time is not
// portably available outside Linux statx.
func statCandidateTimes(path string) []time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return []time.Time{info.ModTime()}
}

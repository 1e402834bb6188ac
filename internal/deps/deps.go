// Package deps reports the availability of external binaries the organizer
// can use. Every dependency here is optional; absence degrades a fallback
// strategy instead of failing the run.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external tool the organizer relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Default returns the organizer's external tool requirements. The ffprobe
// command is taken from configuration.
func Default(ffprobeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "ffprobe",
			Command:     ffprobeBinary,
			Description: "video metadata fallback",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		status.Command = strings.TrimSpace(req.Command)
		if status.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(status.Command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

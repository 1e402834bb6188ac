package route

import (
	"path/filepath"

	"github.com/maartenor/photo-organizer/internal/classify"
	"github.com/maartenor/photo-organizer/internal/evidence"
)

// Disposition classifies where a file ends up.
type Disposition int

const (
	// Unprocessable files move to the quarantine directory.
	Unprocessable Disposition = iota
	// Organized files move to their year/month directory.
	Organized
	// NeedsSort files move to the holding directory for the resort sweep.
	NeedsSort
)

func (d Disposition) String() string {
	switch d {
	case Organized:
		return "organized"
	case NeedsSort:
		return "needs_sort"
	default:
		return "unprocessable"
	}
}

// Outcome is the routing decision for a single file.
type Outcome struct {
	Disposition Disposition
	Date        evidence.Date
	Reason      string
}

// Decide maps a category and optional date evidence to an outcome. Files
// that are neither image nor video are unprocessable regardless of
// evidence; media files without evidence are held for the resort sweep.
func Decide(category classify.Category, date evidence.Date, hasDate bool) Outcome {
	if category == classify.Other {
		return Outcome{Disposition: Unprocessable, Reason: "not image or video"}
	}
	if hasDate {
		return Outcome{Disposition: Organized, Date: date}
	}
	return Outcome{Disposition: NeedsSort, Reason: "no date metadata"}
}

// Layout describes the directory tree produced under the target root.
type Layout struct {
	Root             string
	ToSortDir        string
	UnprocessableDir string
}

// DatedDir returns the year/month directory for organized files.
func (l Layout) DatedDir(d evidence.Date) string {
	return filepath.Join(l.Root, d.YearDir(), d.MonthDir())
}

// ToSort returns the holding directory for files pending the resort sweep.
func (l Layout) ToSort() string {
	return filepath.Join(l.Root, l.ToSortDir)
}

// Unprocessable returns the quarantine directory.
func (l Layout) Unprocessable() string {
	return filepath.Join(l.Root, l.UnprocessableDir)
}

// DestinationDir resolves the outcome to its target directory.
func (o Outcome) DestinationDir(l Layout) string {
	switch o.Disposition {
	case Organized:
		return l.DatedDir(o.Date)
	case NeedsSort:
		return l.ToSort()
	default:
		return l.Unprocessable()
	}
}

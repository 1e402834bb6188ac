package evidence

import (
	"regexp"
	"strconv"
	"time"
)

// filenamePattern pairs a regexp with the submatch indices carrying the year
// and month. Patterns are unanchored and tried strictly in order; the bare
// YYYYMMDD pattern shadows the IMG/VID prefixed forms and an 8-digit number
// can match it even when no date was intended. That ordering is load-bearing
// for existing libraries and stays as-is.
type filenamePattern struct {
	re       *regexp.Regexp
	yearIdx  int
	monthIdx int
}

var filenamePatterns = []filenamePattern{
	{regexp.MustCompile(`(\d{4})[-_](\d{2})[-_]\d{2}`), 1, 2},  // YYYY-MM-DD, YYYY_MM_DD
	{regexp.MustCompile(`\d{2}[-_](\d{2})[-_](\d{4})`), 2, 1},  // DD-MM-YYYY, DD_MM_YYYY
	{regexp.MustCompile(`(\d{4})(\d{2})\d{2}`), 1, 2},          // YYYYMMDD
	{regexp.MustCompile(`IMG[-_](\d{4})(\d{2})\d{2}`), 1, 2},   // IMG-YYYYMMDD, IMG_YYYYMMDD
	{regexp.MustCompile(`VID[-_](\d{4})(\d{2})\d{2}`), 1, 2},   // VID-YYYYMMDD, VID_YYYYMMDD
}

// FromFilename recovers a date embedded in the bare filename, if one is
// present and refers to the current month or earlier.
func FromFilename(name string) (Date, bool) {
	return FromFilenameAt(name, time.Now())
}

// FromFilenameAt is FromFilename with an explicit reference time. Dates in a
// future month relative to now are rejected: a camera does not produce files
// from next month, so such a match is noise.
func FromFilenameAt(name string, now time.Time) (Date, bool) {
	for _, pattern := range filenamePatterns {
		match := pattern.re.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		year, err := strconv.Atoi(match[pattern.yearIdx])
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(match[pattern.monthIdx])
		if err != nil {
			continue
		}
		date, ok := NewDate(year, month)
		if !ok || date.After(now) {
			continue
		}
		return date, true
	}
	return Date{}, false
}

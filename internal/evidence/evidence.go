package evidence

import (
	"fmt"
	"strconv"
	"time"
)

// Date is a resolved (year, month) pair usable for routing. Day-of-month is
// discarded throughout; filing granularity is the month.
type Date struct {
	Year  int
	Month time.Month
}

// NewDate validates a year/month pair. Years before 1900 and impossible
// months yield no date.
func NewDate(year, month int) (Date, bool) {
	if year < 1900 || month < 1 || month > 12 {
		return Date{}, false
	}
	return Date{Year: year, Month: time.Month(month)}, true
}

// FromTime collapses a timestamp to its year and month.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month()}
}

// YearDir returns the year path segment.
func (d Date) YearDir() string {
	return strconv.Itoa(d.Year)
}

// MonthDir returns the zero-padded month path segment.
func (d Date) MonthDir() string {
	return fmt.Sprintf("%02d", int(d.Month))
}

func (d Date) String() string {
	return d.YearDir() + "-" + d.MonthDir()
}

// After reports whether the date falls in a later month than the supplied
// reference time.
func (d Date) After(ref time.Time) bool {
	if d.Year != ref.Year() {
		return d.Year > ref.Year()
	}
	return d.Month > ref.Month()
}

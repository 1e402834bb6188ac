package evidence

import (
	"os"
	"regexp"
	"strconv"

	"github.com/rwcarlsen/goexif/exif"
)

// EXIF stores DateTimeOriginal as "YYYY:MM:DD HH:MM:SS"; only the year and
// month are used.
var exifDatePattern = regexp.MustCompile(`(\d{4}):(\d{2}):\d{2}`)

// FromImage reads the embedded capture time of an image. The tag being
// absent, unparsable, or the container carrying no metadata at all are all
// reported as missing evidence.
func FromImage(path string) (date Date, ok bool) {
	// The EXIF decoder is not hardened against hostile containers.
	defer func() {
		if recover() != nil {
			date, ok = Date{}, false
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return Date{}, false
	}
	defer f.Close()

	meta, err := exif.Decode(f)
	if err != nil {
		return Date{}, false
	}
	tag, err := meta.Get(exif.DateTimeOriginal)
	if err != nil {
		return Date{}, false
	}
	raw, err := tag.StringVal()
	if err != nil {
		return Date{}, false
	}
	return parseEXIFDate(raw)
}

func parseEXIFDate(raw string) (Date, bool) {
	match := exifDatePattern.FindStringSubmatch(raw)
	if match == nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return Date{}, false
	}
	return NewDate(year, month)
}

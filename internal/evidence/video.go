package evidence

import (
	"context"
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"

	"github.com/maartenor/photo-organizer/internal/probe"
)

// appleEpochOffset is the number of seconds between the Apple/Mac epoch
// (1904-01-01 00:00:00 UTC) and the Unix epoch.
const appleEpochOffset = 2082844800

// creationTagKeys are the ffprobe tag names that may carry a capture
// timestamp, in lookup order.
var creationTagKeys = []string{"creation_time", "date", "DateTimeOriginal"}

// timestampLayouts are tried in order against every candidate tag value.
// First successful parse wins.
var timestampLayouts = []string{
	time.RFC3339Nano,      // ISO-8601, with or without fractional seconds
	"2006-01-02 15:04:05", // space-separated
	"2006:01:02 15:04:05", // EXIF-style colon-separated
}

var probeMedia = probe.Inspect

// SetProbeForTests replaces the ffprobe invocation and returns a restore
// function.
func SetProbeForTests(fn func(ctx context.Context, binary, path string) (probe.Result, error)) func() {
	previous := probeMedia
	probeMedia = fn
	return func() {
		probeMedia = previous
	}
}

// FromVideo resolves the creation date of a video file. Three strategies are
// tried in order: the container's own movie header, an ffprobe tag scan, and
// finally the filesystem timestamps. Each strategy's failure is swallowed
// and the next attempted; total failure reports missing evidence.
func FromVideo(ctx context.Context, ffprobeBinary, path string) (Date, bool) {
	if date, ok := fromContainer(path); ok {
		return date, true
	}
	if date, ok := fromProbe(ctx, ffprobeBinary, path); ok {
		return date, true
	}
	return fromFileTimes(statCandidateTimes(path))
}

// fromContainer reads the creation time from the moov/mvhd box of ISO base
// media containers (mp4, mov, m4v).
func fromContainer(path string) (date Date, ok bool) {
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

	boxes, err := mp4.ExtractBoxesWithPayload(f, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()},
	})
	if err != nil {
		return Date{}, false
	}
	for _, box := range boxes {
		mvhd, valid := box.Payload.(*mp4.Mvhd)
		if !valid {
			continue
		}
		created := mvhd.GetCreationTime()
		if created == 0 {
			continue
		}
		t := time.Unix(int64(created)-appleEpochOffset, 0).UTC()
		if t.Year() < 1970 {
			continue
		}
		return NewDate(t.Year(), int(t.Month()))
	}
	return Date{}, false
}

// fromProbe scans ffprobe's container-level and stream-level tag
// dictionaries for a parsable creation timestamp.
func fromProbe(ctx context.Context, binary, path string) (Date, bool) {
	result, err := probeMedia(ctx, binary, path)
	if err != nil {
		return Date{}, false
	}
	for _, key := range creationTagKeys {
		for _, value := range result.TagValues(key) {
			for _, layout := range timestampLayouts {
				t, parseErr := time.Parse(layout, value)
				if parseErr != nil {
					continue
				}
				return NewDate(t.Year(), int(t.Month()))
			}
		}
	}
	return Date{}, false
}

// fromFileTimes accepts the first candidate timestamp whose year is
// plausibly not an epoch or default value.
func fromFileTimes(candidates []time.Time) (Date, bool) {
	for _, t := range candidates {
		if t.Year() > 1980 {
			return FromTime(t), true
		}
	}
	return Date{}, false
}

package classify

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Category is the processing category of a file. Only images and videos are
// organized; everything else is quarantined.
type Category int

const (
	Other Category = iota
	Image
	Video
)

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "other"
	}
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
	".heic": {},
	".heif": {},
	".dng":  {},
	".arw":  {},
	".cr2":  {},
	".nef":  {},
	".raf":  {},
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".m4v":  {},
	".mov":  {},
	".avi":  {},
	".mkv":  {},
	".mpg":  {},
	".mpeg": {},
	".3gp":  {},
	".wmv":  {},
	".webm": {},
}

// Detect returns the category of the file at path. It never fails: files
// with unknown or missing extensions whose content cannot be sniffed are
// reported as Other.
func Detect(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; ok {
		return Image
	}
	if _, ok := videoExtensions[ext]; ok {
		return Video
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Other
	}
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return Image
	case strings.HasPrefix(mtype.String(), "video/"):
		return Video
	default:
		return Other
	}
}

package domain

import (
	"strings"
	"time"
)

// Asset is an uploaded binary file (image or PDF) owned by one hotel.
type Asset struct {
	ID          string
	HotelID     string
	FileName    string
	FilePath    string // object path inside the blob bucket
	FileType    string // image|pdf
	FileSize    *int64
	SectionType *string
	Language    *string
	CreatedAt   time.Time
}

// AssetTypeFor maps an upload's MIME type to the stored file type.
// Returns "" for anything that is not image/* or application/pdf.
func AssetTypeFor(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case mime == "application/pdf":
		return "pdf"
	default:
		return ""
	}
}

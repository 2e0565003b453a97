package photos

import (
	"strconv"
	"strings"
)

// ExifInfo holds the EXIF fields used by the stack features.
// Any field may be absent.
type ExifInfo struct {
	DateTimeOriginal *string `json:"dateTimeOriginal,omitempty"`
	ExifImageWidth   *int    `json:"exifImageWidth,omitempty"`
	ExifImageHeight  *int    `json:"exifImageHeight,omitempty"`
}

// Asset is a single photo or video known to the Photo Service.
type Asset struct {
	ID               string    `json:"id"`
	OriginalFileName *string   `json:"originalFileName,omitempty"`
	OriginalPath     string    `json:"originalPath,omitempty"`
	LocalDateTime    string    `json:"localDateTime,omitempty"`
	ExifInfo         *ExifInfo `json:"exifInfo,omitempty"`
}

// FileName returns the original file name, falling back to the last segment
// of the original path only when the field is absent. A present but empty
// name stays empty.
func (a Asset) FileName() string {
	if a.OriginalFileName != nil {
		return *a.OriginalFileName
	}
	return PathBase(a.OriginalPath)
}

// Dimensions returns the EXIF width and height. ok is false unless both are
// present.
func (a Asset) Dimensions() (width, height int, ok bool) {
	if a.ExifInfo == nil || a.ExifInfo.ExifImageWidth == nil || a.ExifInfo.ExifImageHeight == nil {
		return 0, 0, false
	}
	return *a.ExifInfo.ExifImageWidth, *a.ExifInfo.ExifImageHeight, true
}

// DateTimeOriginal returns the EXIF capture time, or "N/A".
func (a Asset) DateTimeOriginal() string {
	if a.ExifInfo == nil || a.ExifInfo.DateTimeOriginal == nil {
		return "N/A"
	}
	return *a.ExifInfo.DateTimeOriginal
}

// Resolution formats the EXIF dimensions as WxH, or "N/A".
func (a Asset) Resolution() string {
	w, h, ok := a.Dimensions()
	if !ok {
		return "N/A"
	}
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

// PathBase returns the part of p after the last '/'.
func PathBase(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Stack groups assets under a primary asset.
type Stack struct {
	ID             string  `json:"id"`
	PrimaryAssetID string  `json:"primaryAssetId,omitempty"`
	Assets         []Asset `json:"assets"`
}

// AlbumSummary is an entry of the album list.
type AlbumSummary struct {
	ID         string `json:"id"`
	AlbumName  string `json:"albumName"`
	AssetCount int    `json:"assetCount,omitempty"`
	Order      string `json:"order,omitempty"`
}

// Album is an album together with its assets.
type Album struct {
	AlbumSummary
	Assets []Asset `json:"assets"`
}

// Album sort orders accepted by UpdateAlbumOrder.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

package service

import (
	"path/filepath"
	"strings"
)

// ownerMarker separates the owner's handle from the upload timestamp
// in staged filenames: <handle>_175xxxxxxx_rest.ext. The marker is
// produced by the upload side and must not change, already-staged
// files depend on it.
const ownerMarker = "_175"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var videoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
}

// ParseOwnerToken extracts the handle prefix of a staged filename.
// Returns ok=false when the marker is missing or the prefix is empty.
func ParseOwnerToken(filename string) (string, bool) {
	idx := strings.Index(filename, ownerMarker)
	if idx <= 0 {
		return "", false
	}
	return filename[:idx], true
}

// matchesClass reports whether the filename's extension belongs to the
// media class, case-insensitively.
func matchesClass(filename, mediaType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch mediaType {
	case TypeImages:
		return imageExtensions[ext]
	case TypeVideos:
		return videoExtensions[ext]
	default:
		return false
	}
}

package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageSize is the upload size limit for article images (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ErrImageTooLarge is returned when an upload exceeds MaxImageSize.
var ErrImageTooLarge = errors.New("Image size must not exceed 5MB")

// ValidateImageBySniff checks the provided filename (extension) and the first bytes (head)
// against a whitelist of image types. Returns detected mime or an error.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", errors.New("Image must be a file of type: jpeg, png, gif, webp")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("The file must be an image")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("The file must be an image")
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", errors.New("The file must be an image")
}

package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateDatasetName validates a dataset name for safety and correctness.
// Names are used for builtin lookups and to derive output filenames, so
// anything that could smuggle a path component is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDataset, "dataset name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "dataset name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidDataset, "dataset name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidDataset, "dataset name cannot contain traversal sequences (..)")
	}

	return nil
}

// hexColorRegex matches #RGB and #RRGGBB colors, with the # optional.
var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS-style hex color.
func ValidateHexColor(hex string) error {
	if hex == "" {
		return New(ErrCodeInvalidStyle, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(hex) {
		return New(ErrCodeInvalidStyle, "invalid hex color: %q", hex)
	}
	return nil
}

// Surface bounds. The upper limit keeps a typo like --width 808000 from
// allocating a multi-gigabyte raster.
const (
	minSurface = 16
	maxSurface = 16384
)

// ValidateSurface validates requested output dimensions.
func ValidateSurface(width, height int) error {
	if width < minSurface || height < minSurface {
		return New(ErrCodeInvalidInput, "surface %dx%d too small (min %d per side)", width, height, minSurface)
	}
	if width > maxSurface || height > maxSurface {
		return New(ErrCodeInvalidInput, "surface %dx%d too large (max %d per side)", width, height, maxSurface)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

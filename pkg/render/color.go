package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadColor is returned by [ParseHex] for strings that are not valid
// "#RGB" or "#RRGGBB" hex colors.
var ErrBadColor = errors.New("invalid hex color")

// ParseHex parses a "#RGB" or "#RRGGBB" hex string into an opaque RGBA
// color. Raster sinks apply op opacity on top of the parsed color; vector
// sinks embed the string as-is and never need this.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// already expanded
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

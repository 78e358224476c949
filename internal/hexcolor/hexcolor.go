// Package hexcolor converts between RGBA colors and the 6-character
// uppercase hex strings used by the ved text format.
package hexcolor

import (
	"image/color"
	"strconv"
)

const digits = "0123456789ABCDEF"

// Append appends the canonical 6-character uppercase hex form of c
// (no '#' prefix, alpha dropped) to dst and returns the extended slice.
func Append(dst []byte, c color.RGBA) []byte {
	return append(dst,
		digits[c.R>>4], digits[c.R&0xF],
		digits[c.G>>4], digits[c.G&0xF],
		digits[c.B>>4], digits[c.B&0xF],
	)
}

// Format returns the canonical 6-character uppercase hex form of c.
func Format(c color.RGBA) string {
	return string(Append(make([]byte, 0, 6), c))
}

// Resolve parses a hex color string into an opaque RGBA color.
//
// The string is normalized by prefixing '#' when absent. A normalized
// string shorter than 7 characters is an invalid color and Resolve reports
// ok=false; the caller substitutes opaque black. Otherwise the three hex
// pairs at offsets [1:3], [3:5], [5:7] become the red, green and blue
// channels. A pair that fails to parse yields channel value 0 rather than
// failing the whole color. Trailing characters beyond offset 7 are ignored.
// Alpha is always 255.
func Resolve(s string) (color.RGBA, bool) {
	if len(s) == 0 || s[0] != '#' {
		s = "#" + s
	}
	if len(s) < 7 {
		return color.RGBA{A: 255}, false
	}

	return color.RGBA{
		R: pair(s[1:3]),
		G: pair(s[3:5]),
		B: pair(s[5:7]),
		A: 255,
	}, true
}

// pair parses a 2-character hex pair, substituting 0 on failure.
func pair(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}

	return uint8(v)
}

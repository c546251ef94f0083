package graphics

import (
	"strconv"
	"strings"

	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS-style color value. Accepted forms, case-insensitive:
//
//   - #rgb and #rrggbb (opaque)
//   - #rgba and #rrggbbaa (alpha last, as in CSS)
//   - "transparent"
//   - any SVG 1.1 / CSS named color ("red", "cornflowerblue", ...)
//
// Any other input fails with *errors.ColorParseError.
func ParseColor(s string) (Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, &errors.ColorParseError{Value: s}
	}
	if strings.HasPrefix(value, "#") {
		c, ok := parseHex(value)
		if !ok {
			return 0, &errors.ColorParseError{Value: s}
		}
		return c, nil
	}
	if value == "transparent" {
		return ColorTransparent, nil
	}
	if named, ok := colornames.Map[value]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, &errors.ColorParseError{Value: s}
}

// MustParseColor is like ParseColor but panics on invalid input. It is meant
// for package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(value string) (Color, bool) {
	digits := value[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return 0, false
		}
	}

	alpha := uint8(0xFF)
	switch len(digits) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return 0, false
		}
		alpha = uint8(a)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return 0, false
		}
		alpha = uint8(a)
		digits = digits[:6]
	default:
		return 0, false
	}

	rgb, err := colorful.Hex("#" + digits)
	if err != nil {
		return 0, false
	}
	r, g, b := rgb.RGB255()
	return RGBA8(r, g, b, alpha), true
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f')
}

package htmlspan

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/graphics"
)

// property enumerates the recognized inline style properties.
type property int

const (
	propUnknown property = iota
	propBackgroundColor
	propColor
	propFontWeight
	propFontStyle
	propFontFamily
	propFontSize
)

func propertyOf(name string) property {
	switch strings.ToLower(name) {
	case "background-color":
		return propBackgroundColor
	case "color":
		return propColor
	case "font-weight":
		return propFontWeight
	case "font-style":
		return propFontStyle
	case "font-family":
		return propFontFamily
	case "font-size":
		return propFontSize
	default:
		return propUnknown
	}
}

// Declaration is one property:value pair of an inline style attribute, with
// all whitespace already removed.
type Declaration struct {
	Property string
	Value    string
	// HasValue is false when the segment had no colon.
	HasValue bool
}

// ParseInlineStyle splits a style attribute into declarations. Whitespace is
// removed everywhere, empty segments are dropped and each segment is split at
// its first colon. A segment without a colon yields an empty Value and a
// false HasValue.
func ParseInlineStyle(style string) []Declaration {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, style)

	var decls []Declaration
	for _, segment := range strings.Split(compact, ";") {
		if segment == "" {
			continue
		}
		prop, value, ok := strings.Cut(segment, ":")
		decls = append(decls, Declaration{Property: prop, Value: value, HasValue: ok})
	}
	return decls
}

// ApplyInline applies a style attribute value on top of c. Unknown
// properties are ignored. An unparseable color aborts with
// *errors.ColorParseError; a known property without a value, or a font size
// without digits, aborts with *errors.StyleError.
func (c StyleContext) ApplyInline(style string) (StyleContext, error) {
	for _, d := range ParseInlineStyle(style) {
		var err error
		if c, err = c.apply(d); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (c StyleContext) apply(d Declaration) (StyleContext, error) {
	prop := propertyOf(d.Property)
	switch prop {
	case propUnknown, propBackgroundColor, propColor:
	default:
		if !d.HasValue {
			return c, &errors.StyleError{Property: strings.ToLower(d.Property), Msg: "missing value"}
		}
	}

	switch prop {
	case propBackgroundColor:
		col, err := graphics.ParseColor(d.Value)
		if err != nil {
			return c, err
		}
		return c.WithBackground(col), nil
	case propColor:
		col, err := graphics.ParseColor(d.Value)
		if err != nil {
			return c, err
		}
		return c.WithForeground(col), nil
	case propFontWeight:
		switch strings.ToLower(d.Value) {
		case "bold":
			return c.WithBold(true), nil
		case "normal":
			return c.WithBold(false), nil
		}
	case propFontStyle:
		// Known defect, preserved: font-style toggles the bold flag, not
		// italic (probably a copy-paste slip). Do not change without
		// product sign-off.
		switch strings.ToLower(d.Value) {
		case "italic":
			return c.WithBold(true), nil
		case "normal":
			return c.WithBold(false), nil
		}
	case propFontFamily:
		return c.WithFontFamily(d.Value), nil
	case propFontSize:
		size, err := parseFontSize(d.Value)
		if err != nil {
			return c, err
		}
		return c.WithFontSize(size), nil
	}
	return c, nil
}

// parseFontSize keeps only the decimal digits of v, so units are discarded
// and "40px", "40pt" and "40em" all mean 40. A value without digits is an
// error.
func parseFontSize(v string) (float64, error) {
	digits := strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return r
		}
		return -1
	}, v)
	if digits == "" {
		return 0, &errors.StyleError{Property: "font-size", Value: v, Msg: "no digits"}
	}
	size, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, &errors.StyleError{Property: "font-size", Value: v, Msg: "out of range"}
	}
	return size, nil
}

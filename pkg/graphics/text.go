package graphics

import (
	"fmt"
	"strings"
)

const (
	// DefaultFontSize is used when no font size is specified.
	DefaultFontSize float64 = 14
)

// FontAttributes is a set of font flags. Flags combine with bitwise or, so a
// span can be both bold and italic.
type FontAttributes uint8

const (
	// FontAttributesNone is regular text.
	FontAttributesNone FontAttributes = 0
	// FontAttributesBold selects a bold face.
	FontAttributesBold FontAttributes = 1 << 0
	// FontAttributesItalic selects an italic face.
	FontAttributesItalic FontAttributes = 1 << 1
)

// Has reports whether all flags in f are set.
func (a FontAttributes) Has(f FontAttributes) bool {
	return a&f == f
}

// With returns a copy with the flags in f set.
func (a FontAttributes) With(f FontAttributes) FontAttributes {
	return a | f
}

// Without returns a copy with the flags in f cleared.
func (a FontAttributes) Without(f FontAttributes) FontAttributes {
	return a &^ f
}

// String returns a human-readable representation of the font attributes.
func (a FontAttributes) String() string {
	if a == FontAttributesNone {
		return "none"
	}
	var parts []string
	if a.Has(FontAttributesBold) {
		parts = append(parts, "bold")
	}
	if a.Has(FontAttributesItalic) {
		parts = append(parts, "italic")
	}
	if rest := a.Without(FontAttributesBold | FontAttributesItalic); rest != 0 {
		parts = append(parts, fmt.Sprintf("FontAttributes(%d)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// TextDecorations is a set of decoration lines drawn with the text.
type TextDecorations uint8

const (
	// TextDecorationsNone draws no decoration.
	TextDecorationsNone TextDecorations = 0
	// TextDecorationsUnderline draws a line below the text baseline.
	TextDecorationsUnderline TextDecorations = 1 << 0
	// TextDecorationsStrikethrough draws a line through the middle of the text.
	TextDecorationsStrikethrough TextDecorations = 1 << 1
)

// Has reports whether all flags in f are set.
func (d TextDecorations) Has(f TextDecorations) bool {
	return d&f == f
}

// With returns a copy with the flags in f set.
func (d TextDecorations) With(f TextDecorations) TextDecorations {
	return d | f
}

// Without returns a copy with the flags in f cleared.
func (d TextDecorations) Without(f TextDecorations) TextDecorations {
	return d &^ f
}

// String returns a human-readable representation of the decorations.
func (d TextDecorations) String() string {
	if d == TextDecorationsNone {
		return "none"
	}
	var parts []string
	if d.Has(TextDecorationsUnderline) {
		parts = append(parts, "underline")
	}
	if d.Has(TextDecorationsStrikethrough) {
		parts = append(parts, "strikethrough")
	}
	if rest := d.Without(TextDecorationsUnderline | TextDecorationsStrikethrough); rest != 0 {
		parts = append(parts, fmt.Sprintf("TextDecorations(%d)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

package htmlspan

import "github.com/go-drift/htmllabel/pkg/graphics"

// Document-level defaults. A context whose color equals one of these is
// treated as not having set it, so Derive does not pin the default into
// descendants.
const (
	DefaultBackground = graphics.ColorTransparent
	DefaultForeground = graphics.ColorBlack
)

// StyleContext is the cascading style state carried down the element tree.
// It is a value type: every method returns a modified copy and never
// changes the receiver, so sibling subtrees cannot observe each other's
// overrides.
//
// The zero value has no colors set, regular text and no activation handler.
type StyleContext struct {
	background    graphics.Color
	foreground    graphics.Color
	hasBackground bool
	hasForeground bool
	attributes    graphics.FontAttributes
	decorations   graphics.TextDecorations
	fontFamily    string
	fontSize      float64
	link          string
	onTap         func()
}

// NewStyleContext seeds a context from a widget's default style.
func NewStyleContext(base graphics.SpanStyle) StyleContext {
	return StyleContext{
		background:    base.BackgroundColor,
		foreground:    base.Color,
		hasBackground: true,
		hasForeground: true,
		attributes:    base.FontAttributes,
		decorations:   base.Decorations,
		fontFamily:    base.FontFamily,
		fontSize:      base.FontSize,
	}
}

// Derive returns the context a child element starts from. Font attributes,
// family, size, decorations and the activation handler always carry over.
// Colors carry over only when they differ from the document defaults, so a
// descendant without its own color picks up the nearest explicitly colored
// ancestor.
func (c StyleContext) Derive() StyleContext {
	child := StyleContext{
		attributes:  c.attributes,
		decorations: c.decorations,
		fontFamily:  c.fontFamily,
		fontSize:    c.fontSize,
		link:        c.link,
		onTap:       c.onTap,
	}
	if c.hasBackground && c.background != DefaultBackground {
		child.background, child.hasBackground = c.background, true
	}
	if c.hasForeground && c.foreground != DefaultForeground {
		child.foreground, child.hasForeground = c.foreground, true
	}
	return child
}

// WithBackground returns a copy with the background color set.
func (c StyleContext) WithBackground(col graphics.Color) StyleContext {
	c.background, c.hasBackground = col, true
	return c
}

// WithForeground returns a copy with the text color set.
func (c StyleContext) WithForeground(col graphics.Color) StyleContext {
	c.foreground, c.hasForeground = col, true
	return c
}

// WithBold returns a copy with the bold flag set or cleared.
func (c StyleContext) WithBold(on bool) StyleContext {
	c.attributes = setFlag(c.attributes, graphics.FontAttributesBold, on)
	return c
}

// WithItalic returns a copy with the italic flag set or cleared.
func (c StyleContext) WithItalic(on bool) StyleContext {
	c.attributes = setFlag(c.attributes, graphics.FontAttributesItalic, on)
	return c
}

// WithUnderline returns a copy with the underline decoration set or cleared.
func (c StyleContext) WithUnderline(on bool) StyleContext {
	if on {
		c.decorations = c.decorations.With(graphics.TextDecorationsUnderline)
	} else {
		c.decorations = c.decorations.Without(graphics.TextDecorationsUnderline)
	}
	return c
}

// WithFontFamily returns a copy with the font family set.
func (c StyleContext) WithFontFamily(family string) StyleContext {
	c.fontFamily = family
	return c
}

// WithFontSize returns a copy with the font size set, in points.
func (c StyleContext) WithFontSize(size float64) StyleContext {
	c.fontSize = size
	return c
}

// WithLink returns a copy whose runs activate onTap. link is informational.
func (c StyleContext) WithLink(link string, onTap func()) StyleContext {
	c.link, c.onTap = link, onTap
	return c
}

// Background returns the background color and whether it is set.
func (c StyleContext) Background() (graphics.Color, bool) {
	return c.background, c.hasBackground
}

// Foreground returns the text color and whether it is set.
func (c StyleContext) Foreground() (graphics.Color, bool) {
	return c.foreground, c.hasForeground
}

// FontAttributes returns the font flags.
func (c StyleContext) FontAttributes() graphics.FontAttributes {
	return c.attributes
}

// Decorations returns the decoration flags.
func (c StyleContext) Decorations() graphics.TextDecorations {
	return c.decorations
}

// FontFamily returns the font family, or "" when unset.
func (c StyleContext) FontFamily() string {
	return c.fontFamily
}

// FontSize returns the font size, or 0 when unset.
func (c StyleContext) FontSize() float64 {
	return c.fontSize
}

// OnTap returns the activation handler, if any.
func (c StyleContext) OnTap() func() {
	return c.onTap
}

// Resolve produces a concrete style. Unset colors fall back to the document
// defaults and an unset size to graphics.DefaultFontSize.
func (c StyleContext) Resolve() graphics.SpanStyle {
	s := graphics.SpanStyle{
		BackgroundColor: DefaultBackground,
		Color:           DefaultForeground,
		FontAttributes:  c.attributes,
		FontFamily:      c.fontFamily,
		FontSize:        c.fontSize,
		Decorations:     c.decorations,
	}
	if c.hasBackground {
		s.BackgroundColor = c.background
	}
	if c.hasForeground {
		s.Color = c.foreground
	}
	if s.FontSize == 0 {
		s.FontSize = graphics.DefaultFontSize
	}
	return s
}

// Run resolves the context into a run carrying text.
func (c StyleContext) Run(text string) graphics.TextRun {
	return graphics.TextRun{
		Text:  text,
		Style: c.Resolve(),
		OnTap: c.onTap,
		Link:  c.link,
	}
}

func setFlag(a, f graphics.FontAttributes, on bool) graphics.FontAttributes {
	if on {
		return a.With(f)
	}
	return a.Without(f)
}

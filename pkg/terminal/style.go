package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/htmllabel/pkg/graphics"
)

// ColorOf maps c to a true-color tcell color. Fully transparent colors map
// to tcell.ColorDefault so the terminal's own color shows through; partial
// alpha is ignored.
func ColorOf(c graphics.Color) tcell.Color {
	if c.IsTransparent() {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// StyleOf maps a resolved run style to a tcell style. A non-empty link is
// attached as an OSC 8 hyperlink on terminals that support it. Font family
// and size have no terminal equivalent and are dropped.
func StyleOf(s graphics.SpanStyle, link string) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(ColorOf(s.Color)).
		Background(ColorOf(s.BackgroundColor)).
		Bold(s.Bold()).
		Italic(s.Italic()).
		Underline(s.Underline()).
		StrikeThrough(s.Decorations.Has(graphics.TextDecorationsStrikethrough))
	if link != "" {
		st = st.Url(link)
	}
	return st
}

package widgets

import (
	"sync"

	"github.com/go-drift/htmllabel/pkg/graphics"
)

// Label displays a sequence of styled runs, typically produced by
// htmlspan.Convert.
//
// The exported fields are the label's default style. They seed the style
// cascade of every conversion and should be set before the label is shared.
// The displayed content is guarded by a mutex, so Convert, Tap and the
// accessors may be called from different goroutines.
//
// A Label must not be copied after first use; the WithX methods return a
// new label carrying the style only.
//
//	label := &widgets.Label{TextColor: graphics.ColorBlack, FontSize: 14}
//	htmlspan.Convert(label, "Hello <b>World</b>")
type Label struct {
	// BackgroundColor is the default background. Zero is transparent.
	BackgroundColor graphics.Color
	// TextColor is the default foreground. Zero is transparent black; set
	// it explicitly for visible text.
	TextColor graphics.Color
	// FontAttributes holds the default bold and italic flags.
	FontAttributes graphics.FontAttributes
	// FontFamily is the default family name ("" = platform default).
	FontFamily string
	// FontSize is the default size in points (0 = graphics.DefaultFontSize).
	FontSize float64
	// TextDecorations holds the default underline and strikethrough flags.
	TextDecorations graphics.TextDecorations

	mu      sync.RWMutex
	content graphics.FormattedText
}

// DefaultStyle returns the label's default style.
func (l *Label) DefaultStyle() graphics.SpanStyle {
	return graphics.SpanStyle{
		BackgroundColor: l.BackgroundColor,
		Color:           l.TextColor,
		FontAttributes:  l.FontAttributes,
		FontFamily:      l.FontFamily,
		FontSize:        l.FontSize,
		Decorations:     l.TextDecorations,
	}
}

// Clear removes the displayed runs.
func (l *Label) Clear() {
	l.mu.Lock()
	l.content = graphics.FormattedText{}
	l.mu.Unlock()
}

// SetFormattedText replaces the displayed runs with a copy of text.
func (l *Label) SetFormattedText(text graphics.FormattedText) {
	text = text.Clone()
	l.mu.Lock()
	l.content = text
	l.mu.Unlock()
}

// FormattedText returns a copy of the displayed runs.
func (l *Label) FormattedText() graphics.FormattedText {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.content.Clone()
}

// Text returns the displayed text without styling.
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.content.PlainText()
}

// Tap activates run i. It reports whether the run exists and has an
// activation handler. The handler is called without holding the lock.
func (l *Label) Tap(i int) bool {
	l.mu.RLock()
	var onTap func()
	if i >= 0 && i < len(l.content.Runs) {
		onTap = l.content.Runs[i].OnTap
	}
	l.mu.RUnlock()
	if onTap == nil {
		return false
	}
	onTap()
	return true
}

// Links returns the indexes of the tappable runs.
func (l *Label) Links() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var idx []int
	for i, r := range l.content.Runs {
		if r.Tappable() {
			idx = append(idx, i)
		}
	}
	return idx
}

// WithTextColor returns a copy of the label's style with the given text
// color and no content.
func (l *Label) WithTextColor(c graphics.Color) *Label {
	n := l.styleCopy()
	n.TextColor = c
	return n
}

// WithBackgroundColor returns a copy of the label's style with the given
// background and no content.
func (l *Label) WithBackgroundColor(c graphics.Color) *Label {
	n := l.styleCopy()
	n.BackgroundColor = c
	return n
}

// WithFont returns a copy of the label's style with the given family and
// size and no content.
func (l *Label) WithFont(family string, size float64) *Label {
	n := l.styleCopy()
	n.FontFamily = family
	n.FontSize = size
	return n
}

// WithFontAttributes returns a copy of the label's style with the given
// font flags and no content.
func (l *Label) WithFontAttributes(attrs graphics.FontAttributes) *Label {
	n := l.styleCopy()
	n.FontAttributes = attrs
	return n
}

// WithDecorations returns a copy of the label's style with the given
// decorations and no content.
func (l *Label) WithDecorations(d graphics.TextDecorations) *Label {
	n := l.styleCopy()
	n.TextDecorations = d
	return n
}

func (l *Label) styleCopy() *Label {
	return &Label{
		BackgroundColor: l.BackgroundColor,
		TextColor:       l.TextColor,
		FontAttributes:  l.FontAttributes,
		FontFamily:      l.FontFamily,
		FontSize:        l.FontSize,
		TextDecorations: l.TextDecorations,
	}
}

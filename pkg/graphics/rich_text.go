package graphics

import "strings"

// SpanStyle is the fully resolved style of one text run. Unlike a cascading
// style context every field holds a concrete value.
type SpanStyle struct {
	BackgroundColor Color
	Color           Color
	FontAttributes  FontAttributes
	FontFamily      string
	FontSize        float64
	Decorations     TextDecorations
}

// Bold reports whether the bold flag is set.
func (s SpanStyle) Bold() bool {
	return s.FontAttributes.Has(FontAttributesBold)
}

// Italic reports whether the italic flag is set.
func (s SpanStyle) Italic() bool {
	return s.FontAttributes.Has(FontAttributesItalic)
}

// Underline reports whether the underline decoration is set.
func (s SpanStyle) Underline() bool {
	return s.Decorations.Has(TextDecorationsUnderline)
}

// TextRun is a piece of text drawn with a single style. OnTap, when non-nil,
// is invoked when the user activates the run (a hyperlink).
type TextRun struct {
	Text  string
	Style SpanStyle
	OnTap func()
	// Link is the activation target, kept for display and inspection.
	Link string
}

// Tappable reports whether the run has an activation handler.
func (r TextRun) Tappable() bool {
	return r.OnTap != nil
}

// FormattedText is an ordered list of runs displayed as one paragraph flow.
type FormattedText struct {
	Runs []TextRun
}

// PlainText returns the concatenation of all run text.
func (t FormattedText) PlainText() string {
	if len(t.Runs) == 1 {
		return t.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Len returns the number of runs.
func (t FormattedText) Len() int {
	return len(t.Runs)
}

// Clone returns a copy whose run slice does not alias t.
func (t FormattedText) Clone() FormattedText {
	if t.Runs == nil {
		return FormattedText{}
	}
	runs := make([]TextRun, len(t.Runs))
	copy(runs, t.Runs)
	return FormattedText{Runs: runs}
}

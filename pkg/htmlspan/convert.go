package htmlspan

import (
	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/markup"
)

// AlertColor is the text color of the run shown when conversion fails.
const AlertColor = graphics.ColorRed

// TextWidget is a text display that shows a list of styled runs.
type TextWidget interface {
	// DefaultStyle returns the widget's own style, used as the base of the
	// cascade.
	DefaultStyle() graphics.SpanStyle
	// Clear removes the displayed content.
	Clear()
	// SetFormattedText replaces the displayed content.
	SetFormattedText(text graphics.FormattedText)
}

// Options controls conversion.
type Options struct {
	// CollapseNewlines removes \n and \r from text nodes. Newlines from <p>
	// and <br> are still emitted.
	CollapseNewlines bool
	// ApplyInlineStyles enables the style attribute.
	ApplyInlineStyles bool
	// Markup configures the parser.
	Markup markup.Options
	// Opener handles link activation. Nil means platform.URLLauncher.
	Opener LinkOpener
}

// DefaultOptions collapses newlines and applies inline styles.
func DefaultOptions() Options {
	return Options{
		CollapseNewlines:  true,
		ApplyInlineStyles: true,
	}
}

// Convert replaces the content of target with the runs for src, using
// DefaultOptions. It never fails: errors are shown in the widget.
func Convert(target TextWidget, src string) {
	ConvertWithOptions(target, src, DefaultOptions())
}

// ConvertWithOptions is Convert with explicit options.
//
// The widget is cleared first. On success it receives the resolved runs; on
// any failure it receives a single bold run "Error: <message>" in
// AlertColor and the error is reported to the error handler. Partial output
// is never shown. Calling it again on the same widget replaces the content.
func ConvertWithOptions(target TextWidget, src string, opts Options) {
	target.Clear()
	base := target.DefaultStyle()
	runs, err := ConvertString(src, NewStyleContext(base), opts)
	if err != nil {
		errors.Report(&errors.Error{
			Op:  "htmlspan.Convert",
			Err: err,
		})
		runs = []graphics.TextRun{ErrorRun(base, err)}
	}
	target.SetFormattedText(graphics.FormattedText{Runs: runs})
}

// ConvertString parses src and builds its runs from base without touching
// any widget. Panics during the walk are returned as *errors.PanicError.
func ConvertString(src string, base StyleContext, opts Options) (runs []graphics.TextRun, err error) {
	defer errors.RecoverWithCallback("htmlspan.ConvertString", func(p *errors.PanicError) {
		runs, err = nil, p
	})

	root, err := markup.ParseWithOptions(src, opts.Markup)
	if err != nil {
		return nil, err
	}
	return buildRuns(root, base, opts)
}

// buildRuns is Build, replaceable in tests.
var buildRuns = Build

// ErrorRun is the run displayed in place of content that failed to convert.
func ErrorRun(base graphics.SpanStyle, err error) graphics.TextRun {
	style := base
	style.BackgroundColor = DefaultBackground
	style.Color = AlertColor
	style.FontAttributes = graphics.FontAttributesBold
	style.Decorations = graphics.TextDecorationsNone
	if style.FontSize == 0 {
		style.FontSize = graphics.DefaultFontSize
	}
	return graphics.TextRun{
		Text:  "Error: " + err.Error(),
		Style: style,
	}
}

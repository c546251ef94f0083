// Package widgets provides in-memory text display widgets that receive the
// output of htmlspan.
//
// # Label
//
// Label is the canonical target of htmlspan.Convert. Construct it with a
// struct literal; the exported fields form the default style every
// conversion starts from:
//
//	label := &widgets.Label{
//	    TextColor:  graphics.ColorBlack,
//	    FontFamily: "Helvetica",
//	    FontSize:   16,
//	}
//	htmlspan.Convert(label, `Read the <a href="https://go.dev/doc">docs</a>`)
//	label.Text() // "Read the docs"
//
// Tap(i) activates the hyperlink of run i, the way a UI would on a click.
//
// # WithX Methods
//
// WithX methods return a NEW label with the modified style and no content;
// they never mutate the receiver:
//
//	title := label.WithFont("Helvetica", 24).WithFontAttributes(graphics.FontAttributesBold)
//
// # Other Displays
//
// Any type with DefaultStyle, Clear and SetFormattedText can receive
// conversions. See package terminal for a tcell-backed display.
package widgets

// Package htmlspan converts a small subset of HTML into styled text runs for
// a single text widget.
//
// Recognized elements:
//
//	<p>    paragraph; a newline is appended to the last run after its content
//	<br/>  line break; a newline is appended to the last run
//	<b>    bold
//	<i>    italic
//	<u>    underline
//	<a>    hyperlink; with a usable href the runs are underlined and tappable
//
// Any other element is a transparent container. Every element except <br>
// honors a style attribute with background-color, color, font-weight,
// font-style, font-family and font-size.
//
// Styles cascade: each element starts from a copy of its parent's
// [StyleContext] and overrides fields on that copy.
//
// Basic usage:
//
//	label := &widgets.Label{TextColor: graphics.ColorBlack, FontSize: 14}
//	htmlspan.Convert(label, `Hello <b>World</b>, see <a href="https://go.dev">Go</a>`)
//
// Conversion never fails from the caller's point of view: markup or color
// errors replace the content with a single red "Error: ..." run.
package htmlspan

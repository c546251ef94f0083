// Package terminal draws labels onto a tcell screen.
//
// A View wraps a widgets.Label and can be the target of htmlspan.Convert.
// Draw lays the runs out in the view's rectangle, wrapping at the right
// edge, and HandleMouse taps the link under a click.
package terminal

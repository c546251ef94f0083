package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/htmllabel/pkg/widgets"
)

// View draws the runs of a widgets.Label into a rectangle of a tcell
// screen and turns mouse clicks on hyperlinks into Tap calls.
//
// View embeds the label, so it can be passed to htmlspan.Convert directly.
// Call Draw after each conversion; hit testing uses the layout of the most
// recent Draw.
type View struct {
	*widgets.Label

	mu     sync.Mutex
	x, y   int
	width  int
	height int
	offset int
	lines  []line
	// drawn is the size used by the most recent Draw.
	drawnWidth, drawnHeight int
}

// NewView returns a view over label. A nil label gets an empty one.
func NewView(label *widgets.Label) *View {
	if label == nil {
		label = &widgets.Label{}
	}
	return &View{Label: label}
}

// SetRect places the view. A width or height <= 0 extends the view to the
// right or bottom edge of the screen.
func (v *View) SetRect(x, y, width, height int) {
	v.mu.Lock()
	v.x, v.y, v.width, v.height = x, y, width, height
	v.mu.Unlock()
}

// Draw lays out the label's runs and paints them. It does not call Show.
func (v *View) Draw(s tcell.Screen) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width, height := v.bounds(s)
	v.drawnWidth, v.drawnHeight = width, height
	runs := v.Label.FormattedText().Runs
	v.lines = layout(runs, width)
	v.clampOffset(height)

	base := StyleOf(v.Label.DefaultStyle(), "")
	for row := 0; row < height; row++ {
		y := v.y + row
		for x := v.x; x < v.x+width; x++ {
			s.SetContent(x, y, ' ', nil, base)
		}
		idx := v.offset + row
		if idx >= len(v.lines) {
			continue
		}
		x := v.x
		for _, c := range v.lines[idx] {
			run := runs[c.run]
			s.SetContent(x, y, c.r, c.comb, StyleOf(run.Style, run.Link))
			x += c.width
		}
	}
}

// ScrollBy moves the first visible line by n lines. The offset is clamped
// at the next Draw.
func (v *View) ScrollBy(n int) {
	v.mu.Lock()
	v.offset += n
	if v.offset < 0 {
		v.offset = 0
	}
	v.mu.Unlock()
}

// Offset returns the index of the first visible line.
func (v *View) Offset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// LineCount returns the number of lines in the most recent layout.
func (v *View) LineCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.lines)
}

// HandleMouse taps the link under a primary-button click. Clicks outside
// the rectangle of the most recent Draw are ignored. It reports whether a
// link was activated.
func (v *View) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()

	v.mu.Lock()
	run := -1
	row := y - v.y + v.offset
	inside := x >= v.x && x < v.x+v.drawnWidth && y >= v.y && y < v.y+v.drawnHeight
	if inside && row < len(v.lines) {
		run = v.lines[row].runAt(x - v.x)
	}
	v.mu.Unlock()

	if run < 0 {
		return false
	}
	return v.Label.Tap(run)
}

// HandleKey scrolls on arrow, page and home/end keys. It reports whether
// the key was consumed.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	v.mu.Lock()
	page := v.height
	v.mu.Unlock()
	if page <= 0 {
		page = 10
	}

	switch ev.Key() {
	case tcell.KeyUp:
		v.ScrollBy(-1)
	case tcell.KeyDown:
		v.ScrollBy(1)
	case tcell.KeyPgUp:
		v.ScrollBy(-page)
	case tcell.KeyPgDn:
		v.ScrollBy(page)
	case tcell.KeyHome:
		v.mu.Lock()
		v.offset = 0
		v.mu.Unlock()
	case tcell.KeyEnd:
		v.mu.Lock()
		v.offset = len(v.lines)
		v.mu.Unlock()
	default:
		return false
	}
	return true
}

func (v *View) bounds(s tcell.Screen) (int, int) {
	sw, sh := s.Size()
	width, height := v.width, v.height
	if width <= 0 {
		width = sw - v.x
	}
	if height <= 0 {
		height = sh - v.y
	}
	return max(width, 0), max(height, 0)
}

func (v *View) clampOffset(height int) {
	limit := len(v.lines) - height
	if v.offset > limit {
		v.offset = limit
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

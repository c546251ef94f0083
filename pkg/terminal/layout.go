package terminal

import (
	"unicode"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/mattn/go-runewidth"
)

// tabWidth is the distance between tab stops, in cells.
const tabWidth = 4

// cell is one screen position. Wide runes occupy width cells; zero-width
// runes ride along as combining characters of the preceding cell.
type cell struct {
	r     rune
	comb  []rune
	width int
	run   int
}

type line []cell

// runAt returns the run index covering column col, or -1.
func (l line) runAt(col int) int {
	x := 0
	for _, c := range l {
		if col >= x && col < x+c.width {
			return c.run
		}
		x += c.width
	}
	return -1
}

// layout breaks runs into lines of at most width cells. Newlines end a line
// and long lines wrap at the cell boundary. A width <= 0 disables wrapping.
func layout(runs []graphics.TextRun, width int) []line {
	lines := []line{nil}
	col := 0
	newLine := func() {
		lines = append(lines, nil)
		col = 0
	}
	put := func(c cell) {
		if width > 0 && col > 0 && col+c.width > width {
			newLine()
		}
		cur := len(lines) - 1
		lines[cur] = append(lines[cur], c)
		col += c.width
	}

	for i, run := range runs {
		for _, r := range run.Text {
			switch {
			case r == '\n':
				newLine()
			case r == '\t':
				for n := tabWidth - col%tabWidth; n > 0; n-- {
					put(cell{r: ' ', width: 1, run: i})
				}
			case unicode.IsControl(r):
			default:
				w := runewidth.RuneWidth(r)
				cur := len(lines) - 1
				if w == 0 {
					if n := len(lines[cur]); n > 0 {
						lines[cur][n-1].comb = append(lines[cur][n-1].comb, r)
					}
					continue
				}
				put(cell{r: r, width: w, run: i})
			}
		}
	}

	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

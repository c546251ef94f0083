package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineText(l line) string {
	var rs []rune
	for _, c := range l {
		rs = append(rs, c.r)
		rs = append(rs, c.comb...)
	}
	return string(rs)
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		width int
		want  []string
	}{
		{"empty", nil, 10, []string{""}},
		{"single line", []string{"ab", "cd"}, 10, []string{"abcd"}},
		{"newline inside run", []string{"a\nb"}, 10, []string{"a", "b"}},
		{"trailing newline dropped", []string{"a\n"}, 10, []string{"a"}},
		{"blank line kept", []string{"a\n\nb"}, 10, []string{"a", "", "b"}},
		{"wrap across runs", []string{"abc", "def"}, 4, []string{"abcd", "ef"}},
		{"no wrap", []string{"abcdef"}, 0, []string{"abcdef"}},
		{"tab stop", []string{"a\tb"}, 10, []string{"a   b"}},
		{"control dropped", []string{"a\rb\x00c"}, 10, []string{"abc"}},
		{"combining mark", []string{"e\u0301x"}, 10, []string{"e\u0301x"}},
		{"wide rune wraps whole", []string{"ab世"}, 3, []string{"ab", "世"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var runs []graphics.TextRun
			for _, s := range tt.texts {
				runs = append(runs, graphics.TextRun{Text: s})
			}
			lines := layout(runs, tt.width)
			got := make([]string, len(lines))
			for i, l := range lines {
				got[i] = lineText(l)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineRunAt(t *testing.T) {
	lines := layout([]graphics.TextRun{{Text: "a"}, {Text: "世"}, {Text: "b"}}, 0)
	require.Len(t, lines, 1)
	l := lines[0]

	assert.Equal(t, 0, l.runAt(0))
	assert.Equal(t, 1, l.runAt(1))
	assert.Equal(t, 1, l.runAt(2), "second cell of a wide rune")
	assert.Equal(t, 2, l.runAt(3))
	assert.Equal(t, -1, l.runAt(4))
	assert.Equal(t, -1, l.runAt(-1))
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, tcell.ColorDefault, ColorOf(graphics.ColorTransparent))
	assert.Equal(t, tcell.ColorDefault, ColorOf(graphics.RGBA8(10, 20, 30, 0)))
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), ColorOf(graphics.ColorRed))
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), ColorOf(graphics.RGBA8(1, 2, 3, 0x80)))
}

func TestStyleOf(t *testing.T) {
	style := graphics.SpanStyle{
		Color:          graphics.ColorBlue,
		FontAttributes: graphics.FontAttributesBold | graphics.FontAttributesItalic,
		Decorations:    graphics.TextDecorationsUnderline | graphics.TextDecorationsStrikethrough,
	}

	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(0, 0, 255)).
		Background(tcell.ColorDefault).
		Bold(true).
		Italic(true).
		Underline(true).
		StrikeThrough(true).
		Url("https://x.test")
	assert.Equal(t, want, StyleOf(style, "https://x.test"))

	_, _, attrs := StyleOf(graphics.SpanStyle{}, "").Decompose()
	assert.Zero(t, attrs&(tcell.AttrBold|tcell.AttrItalic|tcell.AttrUnderline|tcell.AttrStrikeThrough))
}

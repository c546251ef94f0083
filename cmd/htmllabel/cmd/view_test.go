package cmd

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/htmllabel/pkg/terminal"
	labeltest "github.com/go-drift/htmllabel/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r := cells[y*w+x].Runes
		if len(r) == 0 || r[0] == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestViewLoop(t *testing.T) {
	tester := labeltest.NewLabelTesterWithT(t)

	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(60, 4)

	view := terminal.NewView(tester.Label())
	tester.Convert(`go <a href="https://go.dev">here</a>`)
	require.True(t, tester.Find(labeltest.ByLink("https://go.dev")).Exists())

	s.InjectMouse(4, 0, tcell.Button1, tcell.ModNone)
	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, viewLoop(s, view))

	require.Equal(t, 1, tester.PendingDispatches(), "the click queues one link activation")
	tester.Pump()
	assert.Equal(t, []string{"https://go.dev"}, tester.OpenedURLs())
	assert.Equal(t, "go here", screenRow(s, 0))
	assert.Equal(t, strings.TrimRight(statusLine, " "), screenRow(s, 3))
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		expect bool
	}{
		{tcell.KeyRune, 'q', true},
		{tcell.KeyRune, 'Q', true},
		{tcell.KeyEscape, 0, true},
		{tcell.KeyCtrlC, 0, true},
		{tcell.KeyRune, 'x', false},
		{tcell.KeyDown, 0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, isQuit(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)), "%v %q", tt.key, tt.r)
	}
}

// quitScreen queues a quit key as soon as it is initialized.
type quitScreen struct {
	tcell.SimulationScreen
}

func (s quitScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	return nil
}

func TestRunView(t *testing.T) {
	old := newScreen
	newScreen = func() (tcell.Screen, error) {
		return quitScreen{tcell.NewSimulationScreen("")}, nil
	}
	t.Cleanup(func() { newScreen = old })

	_, _, err := runCLI(t, "<b>hello</b>", "view")
	assert.NoError(t, err)
}

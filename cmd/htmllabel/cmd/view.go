package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/htmlspan"
	"github.com/go-drift/htmllabel/pkg/terminal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "view",
		Short: "Show the label in the terminal",
		Long: `Convert markup and display it full-screen in the terminal.

Keys:
  Up/Down, PgUp/PgDn, Home/End   Scroll
  q, Esc, Ctrl-C                 Quit

Click a link to open it with the system URL opener (xdg-open, open or
rundll32). Failures to open a link are ignored.

Input is read from FILE, or from stdin when FILE is omitted or "-".`,
		Usage: "htmllabel view [FILE]",
		Run:   runView,
	})
}

// newScreen is swapped by tests for a simulation screen.
var newScreen = tcell.NewScreen

const statusLine = " q quit   ↑↓ scroll   click a link to open it"

func runView(args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}
	res, err := resolve()
	if err != nil {
		return err
	}

	s, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer s.Fini()

	// Log lines would corrupt the screen.
	old := errors.DefaultHandler
	errors.SetHandler(errors.NopHandler{})
	defer errors.SetHandler(old)

	view := terminal.NewView(res.Label)
	htmlspan.ConvertWithOptions(view, src, res.Options)
	return viewLoop(s, view)
}

// viewLoop draws view and handles events until the user quits or the
// screen is finalized.
func viewLoop(s tcell.Screen, view *terminal.View) error {
	s.EnableMouse()
	draw := func() {
		_, h := s.Size()
		s.Clear()
		view.SetRect(0, 0, 0, h-1)
		view.Draw(s)
		drawStatus(s)
		s.Show()
	}
	draw()

	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
			if view.HandleKey(ev) {
				draw()
			}
		case *tcell.EventMouse:
			view.HandleMouse(ev)
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func drawStatus(s tcell.Screen) {
	w, h := s.Size()
	if h < 2 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range statusLine {
		if x >= w {
			break
		}
		s.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, style)
	}
}

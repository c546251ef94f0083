package htmlspan

import (
	"sync"
	"testing"

	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/markup"
	"github.com/stretchr/testify/require"
)

// fakeWidget records every call made by Convert.
type fakeWidget struct {
	style   graphics.SpanStyle
	clears  int
	content graphics.FormattedText
}

func (w *fakeWidget) DefaultStyle() graphics.SpanStyle { return w.style }
func (w *fakeWidget) Clear() {
	w.clears++
	w.content = graphics.FormattedText{}
}
func (w *fakeWidget) SetFormattedText(text graphics.FormattedText) { w.content = text }

// fakeOpener sends every URL it is asked to open on a channel.
type fakeOpener struct {
	urls chan string
	err  error
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{urls: make(chan string, 8)}
}

func (o *fakeOpener) OpenURL(rawURL string) error {
	o.urls <- rawURL
	return o.err
}

// captureHandler collects reported errors and panics.
type captureHandler struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
	done   chan struct{}
}

func installCaptureHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{done: make(chan struct{}, 8)}
	old := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func (h *captureHandler) HandleError(err *errors.Error) {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
	h.done <- struct{}{}
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, err)
	h.mu.Unlock()
	h.done <- struct{}{}
}

func (h *captureHandler) reported() []*errors.Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.Error(nil), h.errs...)
}

// build parses src strictly and builds it from an empty context.
func build(t *testing.T, src string, opts Options) []graphics.TextRun {
	t.Helper()
	root, err := markup.Parse(src)
	require.NoError(t, err)
	runs, err := Build(root, StyleContext{}, opts)
	require.NoError(t, err)
	return runs
}

func texts(runs []graphics.TextRun) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.Text
	}
	return out
}

package htmlspan

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linkTimeout = 2 * time.Second

func TestLinkActivationOpensHref(t *testing.T) {
	opener := newFakeOpener()
	runs := build(t, `<a href="https://x.test/page?q=1">L</a>`, Options{Opener: opener})
	require.Len(t, runs, 1)

	runs[0].OnTap()

	select {
	case got := <-opener.urls:
		assert.Equal(t, "https://x.test/page?q=1", got)
	case <-time.After(linkTimeout):
		t.Fatal("opener was not called")
	}
}

func TestLinkActivationFailureIsReported(t *testing.T) {
	h := installCaptureHandler(t)
	opener := newFakeOpener()
	opener.err = fmt.Errorf("no handler for scheme")
	runs := build(t, `<a href="tel:123">call</a>`, Options{Opener: opener})
	require.Len(t, runs, 1)

	assert.NotPanics(t, runs[0].OnTap)

	select {
	case <-h.done:
	case <-time.After(linkTimeout):
		t.Fatal("failure was not reported")
	}
	reported := h.reported()
	require.Len(t, reported, 1)
	assert.Equal(t, errors.KindLink, reported[0].Kind)
	assert.Equal(t, "tel:123", reported[0].URL)
	assert.ErrorIs(t, reported[0], opener.err)
}

type panicOpener struct{}

func (panicOpener) OpenURL(string) error { panic("opener blew up") }

func TestLinkActivationPanicIsRecovered(t *testing.T) {
	h := installCaptureHandler(t)
	runs := build(t, `<a href="https://x.test">L</a>`, Options{Opener: panicOpener{}})

	runs[0].OnTap()

	select {
	case <-h.done:
	case <-time.After(linkTimeout):
		t.Fatal("panic was not reported")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	require.Len(t, h.panics, 1)
	assert.Equal(t, "htmlspan.openLink", h.panics[0].Op)
}

func TestLinkActivationDefaultsToPlatformLauncher(t *testing.T) {
	rec := platform.SetupTestLauncher(t.Cleanup)
	runs := build(t, `<a href="https://go.dev">Go</a>`, DefaultOptions())
	require.Len(t, runs, 1)

	// The test dispatcher runs callbacks inline.
	runs[0].OnTap()
	assert.Equal(t, []string{"https://go.dev"}, rec.URLs())
}

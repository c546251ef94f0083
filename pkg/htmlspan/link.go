package htmlspan

import (
	"github.com/go-drift/htmllabel/pkg/errors"
	"github.com/go-drift/htmllabel/pkg/platform"
)

// LinkOpener opens a hyperlink target. platform.URLLauncher is the default.
type LinkOpener interface {
	OpenURL(rawURL string) error
}

// linkHandler returns the activation handler for href. The handler returns
// without waiting for the opener: it is scheduled through platform.Dispatch
// when the host registered a dispatcher, else run on its own goroutine. Any
// failure or panic is reported to the error handler and otherwise dropped.
func linkHandler(opener LinkOpener, href string) func() {
	return func() {
		open := func() { openLink(opener, href) }
		if !platform.Dispatch(open) {
			go open()
		}
	}
}

func openLink(opener LinkOpener, href string) {
	defer errors.Recover("htmlspan.openLink")
	if err := opener.OpenURL(href); err != nil {
		errors.Report(&errors.Error{
			Op:   "htmlspan.openLink",
			Kind: errors.KindLink,
			URL:  href,
			Err:  err,
		})
	}
}

func (o Options) opener() LinkOpener {
	if o.Opener != nil {
		return o.Opener
	}
	return platform.URLLauncher
}

package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/htmlspan"
	"github.com/go-drift/htmllabel/pkg/platform"
	"github.com/go-drift/htmllabel/pkg/widgets"
)

// LabelTester converts markup into a label without touching the desktop.
// Link taps are queued on the tester's dispatch queue and run by Pump, and
// opened URLs are recorded instead of launched.
type LabelTester struct {
	label      *widgets.Label
	options    htmlspan.Options
	launcher   *platform.RecordingLauncher
	dispatches []func()
}

// NewLabelTester creates a tester with an empty label and default options.
// Call Cleanup() when done, or use NewLabelTesterWithT() instead.
func NewLabelTester() *LabelTester {
	t := &LabelTester{
		label:    &widgets.Label{TextColor: graphics.ColorBlack, FontSize: graphics.DefaultFontSize},
		options:  htmlspan.DefaultOptions(),
		launcher: &platform.RecordingLauncher{},
	}
	platform.URLLauncher.SetLauncher(t.launcher)
	// Register this tester's dispatch function with the platform package
	// so that link taps are deferred until Pump.
	platform.RegisterDispatch(t.Dispatch)
	return t
}

// NewLabelTesterWithT creates a tester that auto-cleans up via t.Cleanup().
func NewLabelTesterWithT(t *testing.T) *LabelTester {
	tester := NewLabelTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the desktop launcher and clears the dispatch function.
func (t *LabelTester) Cleanup() {
	t.dispatches = nil
	platform.ResetForTest()
}

// SetLabel replaces the label that receives converted text.
func (t *LabelTester) SetLabel(label *widgets.Label) {
	t.label = label
}

// SetOptions replaces the conversion options.
func (t *LabelTester) SetOptions(opts htmlspan.Options) {
	t.options = opts
}

// Label returns the label under test.
func (t *LabelTester) Label() *widgets.Label {
	return t.label
}

// Convert converts src into the label.
func (t *LabelTester) Convert(src string) {
	htmlspan.ConvertWithOptions(t.label, src, t.options)
}

// Runs returns the label's current runs.
func (t *LabelTester) Runs() []graphics.TextRun {
	return t.label.FormattedText().Runs
}

// Find evaluates a finder against the label's runs.
func (t *LabelTester) Find(finder Finder) FinderResult {
	runs := t.Runs()
	return FinderResult{runs: runs, indexes: finder.Evaluate(runs), finder: finder}
}

// Tap taps the first run matched by finder. The link handler is queued
// and runs on the next Pump.
func (t *LabelTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no runs: %s", finder.Description())
	}
	if !t.label.Tap(result.Index(0)) {
		return fmt.Errorf("Tap: run is not a link: %s", finder.Description())
	}
	return nil
}

// Dispatch queues fn until the next Pump.
func (t *LabelTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Pump runs the queued dispatches.
func (t *LabelTester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
}

// PendingDispatches returns the number of queued dispatches.
func (t *LabelTester) PendingDispatches() int {
	return len(t.dispatches)
}

// OpenedURLs returns the URLs opened by pumped link taps.
func (t *LabelTester) OpenedURLs() []string {
	return t.launcher.URLs()
}

// SetLaunchError makes every subsequent URL open fail with err.
func (t *LabelTester) SetLaunchError(err error) {
	t.launcher.Err = err
}

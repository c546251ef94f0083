// Package testing provides helpers for testing markup conversion.
//
// # Quick Start
//
// Create a tester, convert markup, and make assertions:
//
//	func TestLinks(t *testing.T) {
//	    tester := labeltest.NewLabelTesterWithT(t)
//	    tester.Convert(`see <a href="https://go.dev">docs</a>`)
//
//	    // Find runs
//	    run := tester.Find(labeltest.ByText("docs")).First()
//
//	    // Tap a link; the handler runs on the next Pump
//	    tester.Tap(labeltest.ByLink("https://go.dev"))
//	    tester.Pump()
//
//	    // Assert what was opened
//	    if got := tester.OpenedURLs(); len(got) != 1 {
//	        t.Errorf("expected one opened URL, got %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare runs against golden files:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/links.snapshot.json")
//
// Update snapshots with:
//
//	HTMLLABEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import labeltest "github.com/go-drift/htmllabel/pkg/testing"
package testing

package platform

import "sync"

// RecordingLauncher is a Launcher that records every URL it is given
// instead of opening it. Err, when set, is returned from each Launch.
type RecordingLauncher struct {
	mu   sync.Mutex
	urls []string
	Err  error
}

// Launch records rawURL.
func (r *RecordingLauncher) Launch(rawURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, rawURL)
	return r.Err
}

// URLs returns the recorded URLs in call order.
func (r *RecordingLauncher) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// SetupTestLauncher installs a RecordingLauncher and a synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	rec := platform.SetupTestLauncher(t.Cleanup)
func SetupTestLauncher(cleanup func(func())) *RecordingLauncher {
	rec := &RecordingLauncher{}
	URLLauncher.SetLauncher(rec)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return rec
}

// ResetForTest restores the desktop launcher and clears the dispatch
// function.
func ResetForTest() {
	URLLauncher.SetLauncher(DesktopLauncher())
	RegisterDispatch(nil)
}

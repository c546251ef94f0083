package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrNoLauncher is returned by OpenURL when no Launcher is installed.
	ErrNoLauncher = errors.New("platform: no URL launcher installed")
)

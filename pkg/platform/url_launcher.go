package platform

import (
	"fmt"
	"net/url"
	"sync"
)

// Launcher hands a validated URL to whatever opens it: a desktop browser, a
// host application, a test double.
type Launcher interface {
	Launch(rawURL string) error
}

// LauncherFunc adapts a function to a Launcher.
type LauncherFunc func(rawURL string) error

// Launch calls f(rawURL).
func (f LauncherFunc) Launch(rawURL string) error {
	return f(rawURL)
}

// URLLauncher provides access to the system URL launcher.
var URLLauncher = &URLLauncherService{
	launcher: DesktopLauncher(),
}

// URLLauncherService manages opening URLs in the system browser.
type URLLauncherService struct {
	mu       sync.RWMutex
	launcher Launcher
}

// SetLauncher replaces the backend used by OpenURL. A nil launcher disables
// opening: OpenURL then fails with ErrNoLauncher.
func (u *URLLauncherService) SetLauncher(l Launcher) {
	u.mu.Lock()
	u.launcher = l
	u.mu.Unlock()
}

// OpenURL opens the given URL in the system browser.
func (u *URLLauncherService) OpenURL(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	l := u.current()
	if l == nil {
		return ErrNoLauncher
	}
	if err := l.Launch(rawURL); err != nil {
		return fmt.Errorf("url_launcher: open %q: %w", rawURL, err)
	}
	return nil
}

// CanOpenURL reports whether rawURL is well formed and a launcher is
// installed. It does not check that anything handles the scheme.
func (u *URLLauncherService) CanOpenURL(rawURL string) (bool, error) {
	if err := validateURL(rawURL); err != nil {
		return false, err
	}
	return u.current() != nil, nil
}

func (u *URLLauncherService) current() Launcher {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.launcher
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("url_launcher: empty URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("url_launcher: invalid URL: %w", err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("url_launcher: URL missing scheme: %q", rawURL)
	}
	return nil
}

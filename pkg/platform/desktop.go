package platform

import (
	"os/exec"
	"runtime"
)

// DesktopLauncher returns a Launcher that starts the operating system's
// opener for the current GOOS: open on macOS, rundll32 on Windows and
// xdg-open elsewhere (requires xdg-utils).
func DesktopLauncher() Launcher {
	return desktopLauncher{goos: runtime.GOOS}
}

type desktopLauncher struct {
	goos string
}

func (d desktopLauncher) Launch(rawURL string) error {
	name, args := d.command(rawURL)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (d desktopLauncher) command(rawURL string) (string, []string) {
	switch d.goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

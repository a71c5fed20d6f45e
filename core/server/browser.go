package server

import (
	"io"

	"github.com/pkg/browser"
)

// IsDesktop reports whether a graphical session is plausible: a display is
// advertised in the environment, or the OS is a desktop one. Headless hosts
// such as a Raspberry Pi kiosk over SSH return false.
func IsDesktop(getenv func(string) string, goos string) bool {
	if getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return goos == "darwin" || goos == "windows"
}

// OpenBrowser opens url in the user's default browser.
func OpenBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

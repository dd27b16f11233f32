// Package window draws charts in a desktop window.
package window

import (
	"os"
	"runtime"
)

// Display is the desktop chart window. The zero value is ready to use.
type Display struct{}

// hasDisplay reports whether the session can show windows.
func hasDisplay() bool {
	return sessionHasDisplay(runtime.GOOS, os.Getenv)
}

// sessionHasDisplay decides display availability for goos. X11 and Wayland
// sessions announce themselves through the environment; macOS and Windows
// always have a desktop.
func sessionHasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows":
		return true
	case "android", "ios", "js", "wasip1", "plan9":
		return false
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}

package cmd

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// Styles used by command output. Each status has one style so the
// candidates, probe and config listings read the same way.
const (
	styleOK    = "\033[0;32m"
	styleFail  = "\033[0;31m"
	styleWarn  = "\033[0;33m"
	styleKey   = "\033[0;36m"
	styleMuted = "\033[2m"
	styleTitle = "\033[1m"
	styleReset = "\033[0m"
)

var colorEnabled = stdoutSupportsColor(os.Getenv, term.IsTerminal(int(os.Stdout.Fd())))

// paint wraps s in style when stdout renders color.
func paint(style, s string) string {
	if !colorEnabled || s == "" {
		return s
	}
	return style + s + styleReset
}

// stdoutSupportsColor honours NO_COLOR and TERM=dumb, and only colors a
// terminal. Legacy Windows consoles without a VT-capable host stay plain.
func stdoutSupportsColor(getenv func(string) string, isTTY bool) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	if !isTTY {
		return false
	}
	if runtime.GOOS == "windows" {
		return getenv("WT_SESSION") != "" || getenv("TERM_PROGRAM") != "" || getenv("ConEmuANSI") == "ON"
	}
	return true
}

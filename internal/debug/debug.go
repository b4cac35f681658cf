// Package debug provides flag-gated debug logging to stderr.
// Output is disabled unless the --debug flag (or SetDebug) turns it on.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	enabled   bool
	enabledMu sync.RWMutex
	noColor   bool
	noColorMu sync.RWMutex
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	noColorMu.Lock()
	defer noColorMu.Unlock()
	noColor = disable
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}

	noColorMu.RLock()
	useColor := !noColor
	noColorMu.RUnlock()

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if useColor {
		fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s\n", timestamp, msg)
	}
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	Debug("===== %s =====", section)
}

// DebugValue prints a labeled value
func DebugValue(label string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Debug("%s: %v", label, value)
}

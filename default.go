// FILE: dash-website/console/default.go
package console

import (
	"github.com/y21/dash-website/markup"
)

// Global instance for package-level functions
var defaultConsole = NewConsole()

// Default returns the package-level console instance.
func Default() *Console {
	return defaultConsole
}

// Default package-level functions that delegate to the default console.
// Entry-producing delegates call the write path directly at the same frame
// depth as the methods, so caller-context annotations still resolve to the
// user's call site.

// ApplyConfig applies a validated configuration to the default console
func ApplyConfig(cfg *Config) error {
	return defaultConsole.ApplyConfig(cfg)
}

// Log renders the arguments as one collapsed console entry
func Log(args ...any) {
	defaultConsole.write(LevelLog, classEntry, "", entrySkip, args)
}

// Info is an alias of Log
func Info(args ...any) {
	defaultConsole.write(LevelLog, classEntry, "", entrySkip, args)
}

// Warn renders the arguments as a warning entry
func Warn(args ...any) {
	defaultConsole.write(LevelWarn, classWarn, "", entrySkip, args)
}

// Error renders the arguments as an error entry
func Error(args ...any) {
	defaultConsole.write(LevelError, classError, "", entrySkip, args)
}

// Assert renders nothing when the condition holds, else errors
func Assert(condition bool, args ...any) {
	if condition {
		return
	}
	defaultConsole.write(LevelError, classError, markup.Escape(assertPrefix), entrySkip, args)
}

// Time stores a start timestamp for a label
func Time(label ...string) {
	defaultConsole.Time(label...)
}

// TimeEnd logs elapsed time for a label and removes it
func TimeEnd(label ...string) {
	defaultConsole.timeEnd(entrySkip+1, label)
}

// Clear removes all rendered entries
func Clear() {
	defaultConsole.Clear()
}

// FILE: dash-website/console/constant.go
package console

// Severity levels for console entries
const (
	LevelLog   int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// Mount defaults
const (
	DefaultWidth  = "100%"
	DefaultHeight = "100%"
)

// Entry classes attached to rendered nodes
const (
	classEntry = "console-entry"
	classWarn  = "console-entry console-warn"
	classError = "console-entry console-error"
)

// contextFallback is the annotation used when the caller location cannot be
// resolved.
const contextFallback = "(unknown)"

// assertPrefix leads the arguments of a failed assertion.
const assertPrefix = "Assertion failed:"

// defaultTimerLabel is used when Time/TimeEnd are called without a label.
const defaultTimerLabel = "default"

// FILE: dash-website/console/native/native.go
// Package native snapshots the built-in operations the rendering engine depends
// on. The snapshot is taken once at process start and threaded explicitly into
// the engine, so formatting behavior cannot be altered by anything the inspected
// values do, and tests can substitute individual operations.
package native

import (
	"sort"
	"strings"
	"time"
)

// Ops is an immutable bundle of captured built-in operations.
// All fields are set at capture time and must not be reassigned afterwards.
type Ops struct {
	// Now is the monotonic time source used by the timer registry.
	Now func() time.Time

	// Since computes elapsed time against a start timestamp from Now.
	Since func(time.Time) time.Duration

	// SortStrings orders property/map keys for stable output.
	SortStrings func([]string)

	// Truncate returns at most n runes of s. Never slices mid-rune.
	Truncate func(s string, n int) string

	// Join concatenates already-rendered fragments.
	Join func(parts []string, sep string) string

	// HasPrefix reports whether s begins with prefix.
	HasPrefix func(s, prefix string) bool
}

// captured is the process-wide snapshot, established before any user value can
// be inspected.
var captured = capture()

func capture() *Ops {
	return &Ops{
		Now:         time.Now,
		Since:       time.Since,
		SortStrings: sort.Strings,
		Truncate:    truncate,
		Join:        strings.Join,
		HasPrefix:   strings.HasPrefix,
	}
}

// Default returns the snapshot taken at init. Callers must treat it as
// read-only.
func Default() *Ops {
	return captured
}

func truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// FILE: dash-website/console/utility.go
package console

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerContext returns a best-effort "file:line" annotation for the log call
// site. Resolution failure degrades to a fixed placeholder and never blocks
// the log output.
func callerContext(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1) // +1 for this frame
	if !ok || file == "" {
		return contextFallback
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "console: ") {
		format = "console: " + format
	}
	return fmt.Errorf(format, args...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

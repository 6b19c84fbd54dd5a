// FILE: dash-website/console/timer.go
package console

import (
	"strconv"
	"time"
)

// Time stores the current monotonic timestamp for a label, overwriting any
// prior entry. Omitting the label uses "default".
func (c *Console) Time(label ...string) {
	name := defaultTimerLabel
	if len(label) > 0 && label[0] != "" {
		name = label[0]
	}

	now := c.ops.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.timers[name] = now
}

// TimeEnd logs the elapsed time for a label and removes it. An unknown label
// is reported as a warning, not an error.
func (c *Console) TimeEnd(label ...string) {
	c.timeEnd(entrySkip+1, label)
}

func (c *Console) timeEnd(skip int, label []string) {
	name := defaultTimerLabel
	if len(label) > 0 && label[0] != "" {
		name = label[0]
	}

	c.mu.Lock()
	start, ok := c.timers[name]
	if ok {
		delete(c.timers, name)
	}
	c.mu.Unlock()

	if !ok {
		// Template form keeps a hostile label out of placeholder parsing.
		c.write(LevelWarn, classWarn, "", skip, []any{"Timer %s does not exist", name})
		return
	}

	elapsed := c.ops.Since(start)
	c.write(LevelLog, classEntry, "", skip, []any{"%s: %sms", name, formatMillis(elapsed)})
}

// formatMillis renders a duration in fractional milliseconds the way host
// consoles report timers.
func formatMillis(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return strconv.FormatFloat(ms, 'f', 3, 64)
}

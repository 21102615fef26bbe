package transcript

import (
	"fmt"
	"time"
)

// FormatDuration renders d as HH:MM:SS. Durations of 24 hours or more are
// shown as their remainder modulo 24 hours; the day count is dropped.
func FormatDuration(d time.Duration) string {
	assertf(d >= 0, "duration %v cannot be negative", d)

	d %= day
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// output line for a single entry
func FormatLine(entry ElapsedEntry) string {
	return FormatDuration(entry.Duration) + " " + entry.Text
}

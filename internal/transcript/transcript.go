package transcript

import (
	"errors"
	"fmt"
	"time"
)

// single wall-clock transcript line
type TimestampedEntry struct {
	Time time.Duration // time of day, offset from midnight
	Text string
}

// transcript line rewritten as time since the first entry
type ElapsedEntry struct {
	Duration time.Duration
	Text     string
}

const day = 24 * time.Hour

var (
	ErrNoSeparator      = errors.New("missing space between timestamp and text")
	ErrBadTimestamp     = errors.New("timestamp does not match HH:MM:SS")
	ErrDurationOverflow = errors.New("elapsed duration overflows")
)

// FormatError reports a line that is not a valid transcript entry.
type FormatError struct {
	Line   string
	LineNo int // 1-based, zero when unknown
	Err    error
}

func (e *FormatError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf(
			"not a valid transcript entry at line %d: %q: %v",
			e.LineNo,
			e.Line,
			e.Err,
		)
	}
	return fmt.Sprintf("not a valid transcript entry: %q: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

package transcript

import (
	"strings"
	"time"
)

const timestampLayout = "15:04:05"

// ParseLine splits a raw line on its first space into a time of day and the
// transcription text that follows it. A trailing carriage return from CRLF
// input is dropped; Convert only strips the "\n".
func ParseLine(line string) (TimestampedEntry, error) {
	line = strings.TrimSuffix(line, "\r")

	stamp, text, ok := strings.Cut(line, " ")
	if !ok {
		return TimestampedEntry{}, &FormatError{Line: line, Err: ErrNoSeparator}
	}

	tod, err := parseTimeOfDay(stamp)
	if err != nil {
		return TimestampedEntry{}, &FormatError{Line: line, Err: err}
	}

	return TimestampedEntry{Time: tod, Text: text}, nil
}

func parseTimeOfDay(stamp string) (time.Duration, error) {
	if len(stamp) != len(timestampLayout) {
		return 0, ErrBadTimestamp
	}
	t, err := time.Parse(timestampLayout, stamp)
	if err != nil {
		return 0, ErrBadTimestamp
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

package transcript

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{2 * time.Minute, "00:02:00"},
		{tod(1, 2, 3), "01:02:03"},
		{tod(23, 59, 59), "23:59:59"},
		{1500 * time.Millisecond, "00:00:01"},
		// day component is dropped
		{day, "00:00:00"},
		{day + 30*time.Minute, "00:30:00"},
		{3*day + tod(4, 5, 6), "04:05:06"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		entry ElapsedEntry
		want  string
	}{
		{ElapsedEntry{Duration: 0, Text: "hello"}, "00:00:00 hello"},
		{ElapsedEntry{Duration: tod(0, 2, 0), Text: "b"}, "00:02:00 b"},
		{ElapsedEntry{Duration: tod(1, 0, 0), Text: ""}, "01:00:00 "},
		{
			ElapsedEntry{Duration: tod(0, 0, 5), Text: "Speaker 1: two  spaces"},
			"00:00:05 Speaker 1: two  spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatLine(tt.entry); got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

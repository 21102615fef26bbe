package transcript

import (
	"fmt"
	"math"
	"time"
)

// most whole days a time.Duration can carry on top of a same-day offset
const maxDays = int64(math.MaxInt64/int64(day)) - 1

// Normalizer rewrites time-of-day entries as elapsed time since the first
// entry. A strictly earlier time of day than the previous entry is read as a
// crossing of midnight. One Normalizer serves a single pass and is not safe
// for concurrent use.
type Normalizer struct {
	started      bool
	firstTime    time.Duration
	previousTime time.Duration
	daysElapsed  int64
	last         time.Duration
}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Next consumes the next entry in file order.
func (n *Normalizer) Next(entry TimestampedEntry) (ElapsedEntry, error) {
	if !n.started {
		n.started = true
		n.firstTime = entry.Time
		n.previousTime = entry.Time
		return ElapsedEntry{Duration: 0, Text: entry.Text}, nil
	}

	if entry.Time < n.previousTime {
		if n.daysElapsed >= maxDays {
			return ElapsedEntry{}, fmt.Errorf(
				"%w: more than %d day rollovers",
				ErrDurationOverflow,
				maxDays,
			)
		}
		n.daysElapsed++
	}
	n.previousTime = entry.Time

	elapsed := time.Duration(n.daysElapsed)*day + (entry.Time - n.firstTime)

	assertf(elapsed >= 0, "elapsed duration %v is negative", elapsed)
	assertf(
		elapsed >= n.last,
		"elapsed duration %v went backwards from %v",
		elapsed,
		n.last,
	)
	n.last = elapsed

	return ElapsedEntry{Duration: elapsed, Text: entry.Text}, nil
}

// number of midnight crossings seen so far
func (n *Normalizer) Days() int64 {
	return n.daysElapsed
}

// Normalize runs a fresh Normalizer over entries.
func Normalize(entries []TimestampedEntry) ([]ElapsedEntry, error) {
	n := NewNormalizer()
	out := make([]ElapsedEntry, 0, len(entries))
	for i, entry := range entries {
		e, err := n.Next(entry)
		if err != nil {
			return out, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

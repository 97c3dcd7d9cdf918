package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WindowBoundLayout is the time.Parse layout of a --from/--to value
// (DD-MM-YYYY_HH-MM-SS, single digit fields accepted).
const WindowBoundLayout = "2-1-2006_15-4-5"

const timeSegments = 3

var ErrInvalidDateTime = errors.New("invalid datetime")

var (
	// MinWindowStart is the earliest representable bound.
	MinWindowStart = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxWindowEnd is the latest representable bound.
	MaxWindowEnd = time.Date(9999, time.December, 31, 23, 59, 59, 999999000, time.UTC)
)

// TimeWindow bounds the records that are aggregated. Both ends are exclusive.
// Start <= End is expected but not enforced.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DefaultTimeWindow spans the full representable range.
func DefaultTimeWindow() TimeWindow {
	return TimeWindow{Start: MinWindowStart, End: MaxWindowEnd}
}

// NewTimeWindow parses optional from/to values; an empty value leaves that end unbounded.
// from is validated before to.
func NewTimeWindow(from, to string) (TimeWindow, error) {
	window := DefaultTimeWindow()
	if from != "" {
		start, err := ParseWindowBound(from)
		if err != nil {
			return TimeWindow{}, err
		}
		window.Start = start
	}
	if to != "" {
		end, err := ParseWindowBound(to)
		if err != nil {
			return TimeWindow{}, err
		}
		window.End = end
	}
	return window, nil
}

// Contains reports whether Start < t < End.
func (w TimeWindow) Contains(t time.Time) bool {
	return w.Start.Before(t) && t.Before(w.End)
}

// ParseWindowBound parses DD-MM-YYYY_HH-MM-SS. Missing trailing time
// segments are filled with "00", so "01-02-2026_13" is 13:00:00.
func ParseWindowBound(value string) (time.Time, error) {
	parts := strings.Split(value, "_")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q: expected exactly one '_' between date and time", ErrInvalidDateTime, value)
	}
	date, clock := parts[0], parts[1]

	segments := strings.Split(clock, "-")
	for len(segments) < timeSegments {
		segments = append(segments, "00")
	}

	t, err := time.Parse(WindowBoundLayout, date+"_"+strings.Join(segments, "-"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDateTime, value, err)
	}
	return t, nil
}

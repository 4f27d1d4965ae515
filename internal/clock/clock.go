// Package clock supplies the current local date to the rest of the
// system through a single injectable seam, so tests can pin "today"
// instead of depending on wall-clock time (spec §2 component 1).
package clock

import "time"

// Clock returns the caller's notion of "now". Real callers use System;
// tests use Fixed.
type Clock interface {
	Now() time.Time
}

// System is the production Clock, backed by time.Now in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock that always returns the same instant. Useful for
// deterministic tests of the algorithm and service layers.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }

// Today returns c.Now() truncated to a calendar day in loc (the caller's
// local timezone). Defaults to UTC when loc is nil.
func Today(c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	now := c.Now().In(loc)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Package orgtime resolves calendar dates in the organization's fixed local
// timezone. Booking dates are calendar days, not instants: two timestamps
// that differ in UTC but fall on the same local day must map to the same
// date key, so every date conversion in the service goes through a Clock.
package orgtime

import (
	"fmt"
	"time"
)

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// Clock resolves times and calendar dates in one fixed location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New creates a Clock for the given IANA timezone name.
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("orgtime: load location %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixed creates a Clock frozen at the given instant, for tests.
func NewFixed(timezone string, at time.Time) (*Clock, error) {
	c, err := New(timezone)
	if err != nil {
		return nil, err
	}
	c.now = func() time.Time { return at }
	return c, nil
}

// Location returns the organization's location.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the organization's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns midnight of the current organization-local calendar day.
func (c *Clock) Today() time.Time {
	return c.CalendarDateOf(c.now())
}

// CalendarDateOf truncates a timestamp to its organization-local calendar
// day, regardless of the timestamp's own location.
func (c *Clock) CalendarDateOf(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDate parses a YYYY-MM-DD string as a calendar day in the
// organization's location.
func (c *Clock) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("orgtime: parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats a calendar-day value as YYYY-MM-DD in the value's own
// location. Date values circulate as midnights in whichever location produced
// them (the database scans DATE columns as UTC midnight); converting to the
// organization's location first would shift such values to the previous day.
// Use CalendarDateOf when the input is an arbitrary instant rather than a
// calendar day.
func (c *Clock) FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay reports whether two timestamps fall on the same organization-local
// calendar day.
func (c *Clock) SameDay(a, b time.Time) bool {
	return c.CalendarDateOf(a).Equal(c.CalendarDateOf(b))
}

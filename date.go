package radar

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar days, ISO-8601.
const DateFormat = "2006-01-02"

// Date represents a calendar day with no time of day, as served by the
// payment-calendar endpoint.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	// normalize through time.Time so that out-of-range components wrap
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// Today returns the current local day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Date())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d == Date{} }

// Before reports whether d is strictly before e.
func (d Date) Before(e Date) bool {
	if d.y != e.y {
		return d.y < e.y
	}
	if d.m != e.m {
		return d.m < e.m
	}
	return d.d < e.d
}

// Time returns the midnight UTC instant of the day.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// String implements fmt.Stringer in the wire format.
func (d Date) String() string { return d.Time().Format(DateFormat) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

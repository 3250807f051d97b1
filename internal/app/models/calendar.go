package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Wire and storage layouts for calendar values.
const (
	DateLayout        = "02-01-2006"
	DateStorageLayout = "2006-01-02"
	TimeLayout        = "15:04"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in the given layout.
func ParseDate(layout, value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC on the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date in the wire layout (dd-MM-yyyy).
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string in dd-MM-yyyy format")
	}
	parsed, err := ParseDate(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected dd-MM-yyyy", s)
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay builds a TimeOfDay and returns a pointer, as used by optional fields.
func NewTimeOfDay(hour, minute int) *TimeOfDay {
	return &TimeOfDay{Hour: hour, Minute: minute}
}

// ParseTimeOfDay parses an HH:mm value.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayFromMicroseconds converts microseconds since midnight, the
// PostgreSQL TIME representation, dropping seconds.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	minutes := us / int64(time.Minute/time.Microsecond)
	return TimeOfDay{Hour: int(minutes / 60), Minute: int(minutes % 60)}
}

// Microseconds returns microseconds since midnight.
func (t TimeOfDay) Microseconds() int64 {
	return int64(t.Hour)*int64(time.Hour/time.Microsecond) + int64(t.Minute)*int64(time.Minute/time.Microsecond)
}

// String formats the time as HH:mm.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON implements json.Marshaler.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a string in HH:mm format")
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	*t = parsed
	return nil
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly wraps time.Time for calendar-date columns so we can control
// both JSON un/marshaling and SQL driver encoding. Forms submit bare
// "2006-01-02" strings; some clients send full RFC3339 timestamps.
type DateOnly time.Time

const dateLayout = "2006-01-02"

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	// strip quotes
	s := string(b)
	if s == "null" || s == `""` {
		*d = DateOnly(time.Time{})
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = DateOnly(t)
		return nil
	}

	// fall back to timestamp forms, keeping the calendar date as written
	// regardless of the timestamp's zone offset
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = DateOnly(dateOf(t))
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("DateOnly.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*d = DateOnly(dateOf(t))
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.Format(dateLayout))
}

// Value implements driver.Valuer so GORM can write DateOnly as a DATE parameter.
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner so GORM can read DATE columns back.
func (d *DateOnly) Scan(src interface{}) error {
	if src == nil {
		*d = DateOnly(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

func (d *DateOnly) parse(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339Nano, "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOnly(t)
			return nil
		}
	}
	return fmt.Errorf("DateOnly.Scan: cannot parse %q", s)
}

// Time returns the wrapped time.Time.
func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

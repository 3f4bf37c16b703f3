package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is the wire and storage representation; all arithmetic and
// comparisons go through minutes-since-midnight to avoid string math.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and normalizes a time string.
// Accepts "HH:MM" and "HH:MM:SS" (seconds are dropped).
func NewTimeStringFromString(s string) (TimeString, error) {
	m, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return fromMinutes(m), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the time as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// AddMinutes returns the time shifted forward by m minutes.
// Returns an error if the result would cross midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := current + m
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %s + %d minutes is outside of the day", t, m)
	}
	return fromMinutes(total), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare lexicographically, which matches the
// minute order for well-formed zero-padded times.
func (t TimeString) IsBefore(other TimeString) bool {
	tm, err1 := t.Minutes()
	om, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return string(t) < string(other)
	}
	return tm < om
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Value implements driver.Valuer, storing the time as "HH:MM:SS".
func (t TimeString) Value() (driver.Value, error) {
	if _, err := t.Minutes(); err != nil {
		return nil, err
	}
	return string(t) + ":00", nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:MM:SS" strings or time.Time values depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time string format: %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hours in time string: %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in time string: %q", s)
	}
	return hours*60 + minutes, nil
}

func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

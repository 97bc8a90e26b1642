package types

import (
	"errors"
	"time"
)

const (
	TimestampLayout      = "2006-01-02 15:04:05"
	TimestampMicroLayout = "2006-01-02 15:04:05.000000"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// FormatTimestamp renders t in UTC as "2006-01-02 15:04:05.000000", dropping
// the fraction when t has no sub-second part.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()

	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(TimestampLayout)
	}

	return t.Format(TimestampMicroLayout)
}

// ParseTimestamp accepts RFC 3339 and "2006-01-02 15:04:05[.ffffff]" and
// returns the instant in UTC. Zone-less values are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidTimestamp
}

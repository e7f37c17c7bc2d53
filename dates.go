package xlautomaten

import (
	"errors"
	"fmt"
	"time"
)

// apiDateLayout is the timestamp format the API uses everywhere. The
// strings carry no zone offset; the server interprets them as UTC.
const apiDateLayout = "2006-01-02 15:04:05"

// FormatAPIDate renders a time in the API's wire format, truncating
// sub-second precision.
func FormatAPIDate(t time.Time) string {
	return t.UTC().Format(apiDateLayout)
}

// ParseAPIDate parses a wire timestamp into a UTC time. An empty string
// is rejected explicitly; silently producing a zero time would let an
// invalid server response masquerade as a real date.
func ParseAPIDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("received an empty date from the API")
	}
	t, err := time.ParseInLocation(apiDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("received an invalid date from the API: %w", err)
	}
	return t, nil
}

// parseAPIDatePtr is the converter-internal variant for nullable wire
// fields the server guarantees to send.
func parseAPIDatePtr(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, errors.New("received an empty date from the API")
	}
	return ParseAPIDate(*s)
}

// parseOptionalAPIDate maps a nullable wire date to an optional domain
// date. nil in, nil out.
func parseOptionalAPIDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseAPIDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

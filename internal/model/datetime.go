package model

import (
	"fmt"
	"time"
)

// Fixed, locale-independent text formats used on every external
// boundary. Dates are YYYY-MM-DD, date-times YYYY-MM-DD HH:MM with a
// 24-hour clock.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// ParseDate parses calendar-date text in the fixed YYYY-MM-DD layout.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", text, ErrInvalidDateFormat)
	}
	return t, nil
}

// ParseDateTime parses date-time text in the fixed YYYY-MM-DD HH:MM layout.
func ParseDateTime(text string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", text, ErrInvalidDateTimeFormat)
	}
	return t, nil
}

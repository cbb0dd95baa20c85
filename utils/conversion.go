package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// CombineDateTime joins a "YYYY-MM-DD" date and a "HH:MM" time-of-day into a
// single absolute instant. The pair is interpreted as local wall-clock time of
// the booking client and normalized to UTC; repeated calls with the same input
// in the same environment always yield the same instant.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)

	combined, err := time.ParseInLocation(dateLayout+"T"+timeLayout, date+"T"+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date/time %q %q: %w", date, timeOfDay, err)
	}
	return combined.UTC(), nil
}

// HumanDate formats a "YYYY-MM-DD" date for email copy, e.g. "Monday, 10 March 2025".
// Invalid input is returned as-is; email formatting never fails a booking.
func HumanDate(date string) string {
	d, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return d.Format("Monday, 2 January 2006")
}

// HumanTime formats a "HH:MM" time-of-day for email copy, e.g. "2:30 PM".
func HumanTime(timeOfDay string) string {
	t, err := time.Parse(timeLayout, strings.TrimSpace(timeOfDay))
	if err != nil {
		return timeOfDay
	}
	return t.Format("3:04 PM")
}

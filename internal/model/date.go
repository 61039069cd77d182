package model

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
}

// FormatDate formats a time as "YYYY-MM-DD" in the local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(dateLayout)
}

// Midnight truncates a time to the start of its day in the local timezone.
func Midnight(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// ValidTimeOfDay reports whether s is a zero-padded "HH:MM" string. Departure
// times must keep this fixed width so that lexicographic comparison agrees
// with chronological order.
func ValidTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh, mm := s[:2], s[3:]
	for _, c := range hh + mm {
		if c < '0' || c > '9' {
			return false
		}
	}
	return hh <= "23" && mm <= "59"
}

package utils

import (
	"fmt"
	"time"
)

// ISODate is the date-only layout used for match and purchase dates.
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD value in the local time zone.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODate, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %v", s, err)
	}
	return t, nil
}

// IsFutureDate reports whether the date-only value lands after today's local
// midnight. Today itself is not in the future. Unparseable input counts as
// not-future; the caller validates the format separately.
func IsFutureDate(s string, now time.Time) bool {
	d, err := ParseISODate(s)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return d.After(today)
}

// TodayISO formats now as a date-only value.
func TodayISO(now time.Time) string {
	return now.Format(ISODate)
}

package utils

import (
	"fmt"
	"regexp"
	"time"
)

// ISODateLayout is the layout of a calendar day (YYYY-MM-DD).
const ISODateLayout = "2006-01-02"

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Clock returns the current time. Tests replace it to pin "today".
type Clock func() time.Time

// FormatDateLocal formats t as YYYY-MM-DD using t's own calendar fields, so a
// time in the local zone yields the local day rather than the UTC one.
func FormatDateLocal(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TodayISO returns the local day of now.
func TodayISO(now Clock) string {
	if now == nil {
		now = time.Now
	}
	return FormatDateLocal(now().Local())
}

// IsISODate reports whether s is four digits, a hyphen, two digits, a hyphen
// and two digits. The check is syntactic: 2024-02-30 passes.
func IsISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

// IsClockTime reports whether s looks like HH:MM.
func IsClockTime(s string) bool {
	return clockTimeRe.MatchString(s)
}

// ParseISODate parses s as a local calendar day at midnight.
func ParseISODate(s string) (time.Time, error) {
	if !IsISODate(s) {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return time.ParseInLocation(ISODateLayout, s, time.Local)
}

// DaysInMonth returns the number of days of the month containing anchor.
func DaysInMonth(anchor time.Time) int {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	return first.AddDate(0, 1, -1).Day()
}

// MonthDays lists every day of the month containing anchor as ISO dates, in
// calendar order.
func MonthDays(anchor time.Time) []string {
	n := DaysInMonth(anchor)
	days := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, FormatDateLocal(time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())))
	}
	return days
}

// Package timeutil provides the calendar-day helpers the feed code relies on.
// "Today" for news and popularity feeds means the same calendar date in the
// platform timezone, so all day arithmetic goes through this package instead
// of comparing raw instants.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// PlatformTZ is the timezone in which feed days are cut.
// The platform runs on UTC by default; entity timestamps are stored
// in UTC too, so day comparisons never shift content between feeds
// on deploys.
var PlatformTZ = time.UTC

// SetPlatformTZ switches the timezone in which feed days are cut.
// Called once at startup with the configured location; a nil
// location is ignored. Not safe to call after day arithmetic has
// started on another goroutine.
func SetPlatformTZ(loc *time.Location) {
	if loc == nil {
		return
	}
	PlatformTZ = loc
}

// Now returns the current time in the platform timezone.
func Now() time.Time {
	return time.Now().In(PlatformTZ)
}

// ToPlatform converts a time to the platform timezone.
func ToPlatform(t time.Time) time.Time {
	return t.In(PlatformTZ)
}

// Date creates a time in the platform timezone with the given date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, PlatformTZ)
}

// DateTime creates a time in the platform timezone with the given date and time.
func DateTime(year, month, day, hour, min, sec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, PlatformTZ)
}

// StartOfDay returns the start of the day (00:00:00) in the platform timezone.
func StartOfDay(t time.Time) time.Time {
	local := ToPlatform(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, PlatformTZ)
}

// EndOfDay returns the end of the day (23:59:59.999999999) in the platform timezone.
func EndOfDay(t time.Time) time.Time {
	local := ToPlatform(t)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, PlatformTZ)
}

// SameDay checks if two times fall on the same calendar date
// in the platform timezone.
func SameDay(t1, t2 time.Time) bool {
	a, b := ToPlatform(t1), ToPlatform(t2)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsToday checks if the given time is today in the platform timezone.
func IsToday(t time.Time) bool {
	return SameDay(t, Now())
}

// DaysBetween calculates the number of whole days between two times.
func DaysBetween(t1, t2 time.Time) int {
	a := StartOfDay(t1)
	b := StartOfDay(t2)
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// Common date/time formats.
const (
	// FormatDate is the standard date format (YYYY-MM-DD).
	FormatDate = "2006-01-02"
	// FormatTime is the standard time format (HH:MM).
	FormatTime = "15:04"
	// FormatDateTime is the standard datetime format.
	FormatDateTime = "2006-01-02 15:04"
	// FormatDateTimeSeconds includes seconds.
	FormatDateTimeSeconds = "2006-01-02 15:04:05"
)

// FormatDateStr formats a time as a date string (YYYY-MM-DD) in the platform timezone.
func FormatDateStr(t time.Time) string {
	return ToPlatform(t).Format(FormatDate)
}

// FormatDateTimeStr formats a time as a datetime string in the platform timezone.
func FormatDateTimeStr(t time.Time) string {
	return ToPlatform(t).Format(FormatDateTime)
}

// FormatRelative returns a human-readable relative time string,
// used when rendering question lists in logs and dev tooling.
func FormatRelative(t time.Time) string {
	d := Now().Sub(ToPlatform(t))
	if d < 0 {
		return "just now"
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		return FormatDateStr(t)
	}
}

// ParseDate parses a date string (YYYY-MM-DD) in the platform timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(FormatDate, value, PlatformTZ)
}

// ParseDateTime parses a datetime string in the platform timezone.
func ParseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(FormatDateTime, value, PlatformTZ)
}

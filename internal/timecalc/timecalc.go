package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a wall-clock time like "09:30" and returns it as an
// offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return time.Duration(h*60+m) * time.Minute, nil
}

// FormatTotal formats seconds as "H:MM". Hours are not padded and may exceed 24.
func FormatTotal(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	return fmt.Sprintf("%d:%02d", h, m)
}

// FormatClock renders a duration shorter than a day as a wall-clock "HH:MM".
func FormatClock(d time.Duration) string {
	d %= 24 * time.Hour
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// WholeHours returns the hour part of a "H:MM" total, discarding the minutes.
func WholeHours(total string) (int64, error) {
	hh, _, ok := strings.Cut(total, ":")
	if !ok {
		return 0, fmt.Errorf("invalid total %q: want H:MM", total)
	}
	h, err := strconv.ParseInt(hh, 10, 64)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid total %q: want H:MM", total)
	}
	return h, nil
}

// WeekdayIndex returns the weekday with Monday=0 … Sunday=6.
func WeekdayIndex(t time.Time) int {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	return (int(t.Weekday()) + 6) % 7
}

// ISOWeek returns the ISO 8601 week number of t.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

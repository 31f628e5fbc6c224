package utils

import (
	"fmt"
	"time"
)

// FormatLocal returns t formatted in loc.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, 02 Jan 2006 15:04")
}

// FormatDate returns only the calendar day of t in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// FormatMinutes renders a duration in minutes as "1h 05m" or "45m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// Elapsed renders the time since start as "hh:mm:ss".
func Elapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

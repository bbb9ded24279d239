// Package timeutil provides time formatting utilities.
package timeutil

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// FormatDuration formats a call latency for debug output.
//
// Examples:
//   - 350ms below one second
//   - 4s below one minute
//   - 1m 23s otherwise
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Round(time.Millisecond)/time.Millisecond)
	}

	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatAge renders how long ago t happened relative to now, at the two
// coarsest non-zero units: "3d 4h", "5h 12m", "7m", "just now".
// A zero t yields "unknown".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	d = d.Round(time.Minute)
	days := int(d / (hoursPerDay * time.Hour))
	hours := int((d % (hoursPerDay * time.Hour)) / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

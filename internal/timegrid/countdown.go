package timegrid

import (
	"fmt"
	"time"
)

// Countdown renders the time remaining until the given date and "HH:MM"
// time as a short human string: "Now" once the target has passed, then the
// coarsest fitting of "In N day(s)", "In Hh Mm" and "In Mm", with anything
// under a minute rounded up to "In 1m". The target is
// interpreted in now's location. Always recomputed; correctness depends on
// the wall clock, so the result must never be cached.
func Countdown(date, t string, now time.Time) (string, error) {
	target, err := At(date, t, now.Location())
	if err != nil {
		return "", err
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		return "Now", nil
	}

	mins := int(remaining.Minutes())
	switch {
	case mins >= MinutesPerDay:
		days := mins / MinutesPerDay
		if days == 1 {
			return "In 1 day", nil
		}
		return fmt.Sprintf("In %d days", days), nil
	case mins >= 60:
		h, m := mins/60, mins%60
		if m == 0 {
			return fmt.Sprintf("In %dh", h), nil
		}
		return fmt.Sprintf("In %dh %dm", h, m), nil
	default:
		// A future target never reads as zero time remaining.
		if mins < 1 {
			mins = 1
		}
		return fmt.Sprintf("In %dm", mins), nil
	}
}

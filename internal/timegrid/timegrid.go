// Package timegrid holds the pure time arithmetic behind the slot grid:
// minute-precision clock math over "HH:MM" strings, day-grid generation
// and human-readable countdowns. Nothing here keeps state.
package timegrid

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440

	// DefaultDayStartHour and DefaultDayEndHour bound the working-day grid.
	DefaultDayStartHour = 9
	DefaultDayEndHour   = 18
)

// TimeToMinutes parses a zero-padded "HH:MM" string into minutes from midnight.
func TimeToMinutes(t string) (int, error) {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", t, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesToTime converts minutes from midnight to a "HH:MM" string.
func MinutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AddMinutes adds minutes to a "HH:MM" time on a 24-hour clock, wrapping
// at midnight. Callers that must not cross the day boundary check with
// CrossesMidnight first.
func AddMinutes(t string, minutes int) (string, error) {
	mins, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	total := ((mins+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
	return MinutesToTime(total), nil
}

// CrossesMidnight reports whether t + minutes passes the 24:00 boundary.
// Ending exactly at 24:00 counts as crossing: a stored slot needs an end
// time on the same calendar day.
func CrossesMidnight(t string, minutes int) (bool, error) {
	mins, err := TimeToMinutes(t)
	if err != nil {
		return false, err
	}
	return mins+minutes >= MinutesPerDay, nil
}

// GenerateDaySlots produces every start time t with dayStartHour <= t and
// t + durationMinutes <= dayEndHour, stepping by durationMinutes.
// Deterministic and restartable; callers re-invoke it per render.
func GenerateDaySlots(durationMinutes, dayStartHour, dayEndHour int) []string {
	if durationMinutes <= 0 {
		return nil
	}
	var slots []string
	for m := dayStartHour * 60; m+durationMinutes <= dayEndHour*60; m += durationMinutes {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// Format12Hour renders a "HH:MM" time on a 12-hour clock with AM/PM.
func Format12Hour(t string) (string, error) {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return "", fmt.Errorf("parse time %q: %w", t, err)
	}
	return parsed.Format("3:04 PM"), nil
}

// At combines a "YYYY-MM-DD" date and "HH:MM" time into an instant in loc.
func At(date, t string, loc *time.Location) (time.Time, error) {
	instant, err := time.ParseInLocation("2006-01-02 15:04", date+" "+t, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date/time %q %q: %w", date, t, err)
	}
	return instant, nil
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

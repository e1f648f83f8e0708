package model

import "time"

// AllowedDurations lists the slot lengths (in minutes) an admin may publish.
var AllowedDurations = []int{30, 60}

// IsAllowedDuration reports whether minutes is one of the published slot lengths.
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if minutes == d {
			return true
		}
	}
	return false
}

// InterviewSlot is a single bookable block of time published by an admin.
// Date is "YYYY-MM-DD", StartTime/EndTime are zero-padded "HH:MM".
// EndTime is always StartTime + DurationMinutes.
type InterviewSlot struct {
	ID                  string    `json:"id"`
	AdminID             string    `json:"admin_id"`
	Date                string    `json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	DurationMinutes     int       `json:"duration_minutes"`
	IsBooked            bool      `json:"is_booked"`
	BookedByCandidateID *string   `json:"booked_by_candidate_id"`
	CreatedAt           time.Time `json:"created_at"`
}

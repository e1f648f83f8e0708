package model

import "time"

// Ratings groups the per-dimension scores an admin records when an
// interview completes. Each field is nil until rated, 1-5 otherwise.
type Ratings struct {
	TeachingDemo  *int `json:"teaching_demo_rating"`
	Communication *int `json:"communication_rating"`
	Knowledge     *int `json:"knowledge_rating"`
	Personality   *int `json:"personality_rating"`
	Overall       *int `json:"overall_rating"`
}

// Validate checks that every supplied rating is within 1-5.
func (r Ratings) Validate() error {
	for _, v := range []*int{r.TeachingDemo, r.Communication, r.Knowledge, r.Personality, r.Overall} {
		if v != nil && (*v < 1 || *v > 5) {
			return ErrInvalidRating
		}
	}
	return nil
}

// Interview is a one-on-one session between an admin and a candidate.
// SlotID is nil when the interview was scheduled directly rather than
// through the slot grid. Timezone is an opaque string and is never
// interpreted by this service.
type Interview struct {
	ID              string          `json:"id"`
	CandidateID     string          `json:"candidate_id"`
	SlotID          *string         `json:"slot_id"`
	ScheduledDate   string          `json:"scheduled_date"`
	ScheduledTime   string          `json:"scheduled_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Timezone        string          `json:"timezone"`
	Status          InterviewStatus `json:"status"`
	RoomReference   *string         `json:"room_reference"`
	Ratings
	Notes       string     `json:"notes"`
	AISummary   string     `json:"ai_summary"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

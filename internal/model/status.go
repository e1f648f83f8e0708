package model

import "fmt"

// InterviewStatus mirrors the interview status enum in PostgreSQL.
//
// Valid status graph:
//
//	scheduled ──► in_progress ──► completed
//	    │               │
//	    │               └───────► cancelled
//	    ├───────────────────────► cancelled
//	    ├───────────────────────► completed
//	    └───────────────────────► no_show
//
// completed, cancelled and no_show are terminal.
type InterviewStatus string

const (
	StatusScheduled  InterviewStatus = "scheduled"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
	StatusNoShow     InterviewStatus = "no_show"
)

// statusTransitions lists every allowed (from → to) pair.
// Terminal statuses have no entry and therefore no outgoing transitions.
var statusTransitions = map[InterviewStatus][]InterviewStatus{
	StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CompletableStatuses are the statuses an interview may be completed from.
var CompletableStatuses = TransitionSources(StatusCompleted)

// CancellableStatuses are the statuses an interview may be cancelled from.
var CancellableStatuses = TransitionSources(StatusCancelled)

// ParseStatus converts a raw string to an InterviewStatus, returning an
// error for unknown values.
func ParseStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(s)
	switch st {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", fmt.Errorf("unknown interview status %q", s)
}

// CanTransition reports whether moving from → to is permitted.
func CanTransition(from, to InterviewStatus) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionSources returns every status a transition to `to` is permitted
// from, in declaration order. The lifecycle guards are built from this so
// the transition table stays the single source of truth.
func TransitionSources(to InterviewStatus) []InterviewStatus {
	var sources []InterviewStatus
	for _, from := range []InterviewStatus{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		if CanTransition(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

// IsTerminal reports whether no forward transition is permitted from s.
func (s InterviewStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// StatusDisplay is the presentation mapping for a status.
type StatusDisplay struct {
	Label string `json:"label"`
	Badge string `json:"badge"`
}

// DisplayFor returns the label and badge class for a status. The switch is
// exhaustive over the closed set of statuses.
func DisplayFor(s InterviewStatus) StatusDisplay {
	switch s {
	case StatusScheduled:
		return StatusDisplay{Label: "Scheduled", Badge: "blue"}
	case StatusInProgress:
		return StatusDisplay{Label: "In progress", Badge: "yellow"}
	case StatusCompleted:
		return StatusDisplay{Label: "Completed", Badge: "green"}
	case StatusCancelled:
		return StatusDisplay{Label: "Cancelled", Badge: "gray"}
	case StatusNoShow:
		return StatusDisplay{Label: "No show", Badge: "red"}
	default:
		return StatusDisplay{Label: string(s), Badge: "gray"}
	}
}

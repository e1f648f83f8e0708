package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from InterviewStatus
		to   InterviewStatus
		want bool
	}{
		{"scheduled to in_progress", StatusScheduled, StatusInProgress, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no_show", StatusScheduled, StatusNoShow, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"in_progress to no_show", StatusInProgress, StatusNoShow, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
		{"no backwards move", StatusInProgress, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTransitionSources(t *testing.T) {
	tests := []struct {
		to   InterviewStatus
		want []InterviewStatus
	}{
		{StatusInProgress, []InterviewStatus{StatusScheduled}},
		{StatusNoShow, []InterviewStatus{StatusScheduled}},
		{StatusCompleted, []InterviewStatus{StatusScheduled, StatusInProgress}},
		{StatusCancelled, []InterviewStatus{StatusScheduled, StatusInProgress}},
		{StatusScheduled, nil},
	}

	for _, tt := range tests {
		got := TransitionSources(tt.to)
		if len(got) != len(tt.want) {
			t.Errorf("TransitionSources(%s) = %v, want %v", tt.to, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("TransitionSources(%s) = %v, want %v", tt.to, got, tt.want)
				break
			}
		}
	}
}

func TestDerivedGuardsMatchTable(t *testing.T) {
	for _, s := range CompletableStatuses {
		if !CanTransition(s, StatusCompleted) {
			t.Errorf("CompletableStatuses contains %s but the table forbids it", s)
		}
	}
	for _, s := range CancellableStatuses {
		if !CanTransition(s, StatusCancelled) {
			t.Errorf("CancellableStatuses contains %s but the table forbids it", s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status InterviewStatus
		want   bool
	}{
		{StatusScheduled, false},
		{StatusInProgress, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusNoShow, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "in_progress", "completed", "cancelled", "no_show"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", s, err)
		}
	}

	if _, err := ParseStatus("done"); err == nil {
		t.Error("ParseStatus accepted an unknown status")
	}
}

func TestRatingsValidate(t *testing.T) {
	five, zero, six := 5, 0, 6

	if err := (Ratings{}).Validate(); err != nil {
		t.Errorf("empty ratings should validate: %v", err)
	}
	if err := (Ratings{Overall: &five}).Validate(); err != nil {
		t.Errorf("rating 5 should validate: %v", err)
	}
	if err := (Ratings{Overall: &zero}).Validate(); err == nil {
		t.Error("rating 0 should be rejected")
	}
	if err := (Ratings{Knowledge: &six}).Validate(); err == nil {
		t.Error("rating 6 should be rejected")
	}
}

func TestDisplayForCoversAllStatuses(t *testing.T) {
	for _, s := range []InterviewStatus{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		d := DisplayFor(s)
		if d.Label == "" || d.Badge == "" {
			t.Errorf("DisplayFor(%s) returned an empty mapping", s)
		}
	}
}

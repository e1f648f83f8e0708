package timegrid

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	now := time.Date(2026, time.August, 27, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{"already started", "2026-08-27", "10:00", "Now"},
		{"in the past", "2026-08-26", "15:00", "Now"},
		{"ninety minutes out", "2026-08-27", "11:30", "In 1h 30m"},
		{"exact hours", "2026-08-27", "12:00", "In 2h"},
		{"under an hour", "2026-08-27", "10:45", "In 45m"},
		{"twenty five hours out", "2026-08-28", "11:00", "In 1 day"},
		{"exactly a day", "2026-08-28", "10:00", "In 1 day"},
		{"several days out", "2026-08-30", "10:00", "In 3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Countdown(tt.date, tt.time, now)
			if err != nil {
				t.Fatalf("Countdown(%q, %q) failed: %v", tt.date, tt.time, err)
			}
			if got != tt.want {
				t.Errorf("Countdown(%q, %q) = %q, want %q", tt.date, tt.time, got, tt.want)
			}
		})
	}
}

func TestCountdownUnderOneMinute(t *testing.T) {
	now := time.Date(2026, time.August, 27, 9, 59, 30, 0, time.UTC)

	got, err := Countdown("2026-08-27", "10:00", now)
	if err != nil {
		t.Fatalf("Countdown failed: %v", err)
	}
	if got != "In 1m" {
		t.Errorf("Countdown 30 seconds out = %q, want %q", got, "In 1m")
	}
}

func TestCountdownInvalidInput(t *testing.T) {
	if _, err := Countdown("tomorrow", "10:00", time.Now()); err == nil {
		t.Error("Countdown accepted a malformed date")
	}
}

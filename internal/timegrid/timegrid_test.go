package timegrid

import (
	"testing"
)

func TestGenerateDaySlots(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		start    int
		end      int
		count    int
		first    string
		last     string
	}{
		{"30 minute grid", 30, 9, 18, 18, "09:00", "17:30"},
		{"60 minute grid", 60, 9, 18, 9, "09:00", "17:00"},
		{"short afternoon", 30, 14, 16, 4, "14:00", "15:30"},
		{"duration fills window", 60, 9, 10, 1, "09:00", "09:00"},
		{"window too small", 60, 9, 9, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateDaySlots(tt.duration, tt.start, tt.end)
			if len(slots) != tt.count {
				t.Fatalf("GenerateDaySlots(%d, %d, %d) returned %d slots, want %d",
					tt.duration, tt.start, tt.end, len(slots), tt.count)
			}
			if tt.count == 0 {
				return
			}
			if slots[0] != tt.first {
				t.Errorf("first slot = %q, want %q", slots[0], tt.first)
			}
			if slots[len(slots)-1] != tt.last {
				t.Errorf("last slot = %q, want %q", slots[len(slots)-1], tt.last)
			}
		})
	}
}

func TestGenerateDaySlotsEndsWithinDay(t *testing.T) {
	for _, duration := range []int{30, 60} {
		for _, slot := range GenerateDaySlots(duration, 9, 18) {
			mins, err := TimeToMinutes(slot)
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) failed: %v", slot, err)
			}
			if mins+duration > 18*60 {
				t.Errorf("slot %q with duration %d ends past 18:00", slot, duration)
			}
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		minutes int
		want    string
	}{
		{"half hour", "09:00", 30, "09:30"},
		{"full hour", "17:00", 60, "18:00"},
		{"over hour boundary", "09:45", 30, "10:15"},
		{"wraps past midnight", "23:30", 60, "00:30"},
		{"negative wraps back", "00:15", -30, "23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMinutes(tt.time, tt.minutes)
			if err != nil {
				t.Fatalf("AddMinutes(%q, %d) failed: %v", tt.time, tt.minutes, err)
			}
			if got != tt.want {
				t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.time, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestAddMinutesInvalidTime(t *testing.T) {
	if _, err := AddMinutes("9am", 30); err == nil {
		t.Error("AddMinutes accepted a malformed time")
	}
}

func TestCrossesMidnight(t *testing.T) {
	tests := []struct {
		time    string
		minutes int
		want    bool
	}{
		{"09:00", 60, false},
		{"23:00", 59, false},
		{"23:30", 30, true},
		{"23:30", 60, true},
	}

	for _, tt := range tests {
		got, err := CrossesMidnight(tt.time, tt.minutes)
		if err != nil {
			t.Fatalf("CrossesMidnight(%q, %d) failed: %v", tt.time, tt.minutes, err)
		}
		if got != tt.want {
			t.Errorf("CrossesMidnight(%q, %d) = %v, want %v", tt.time, tt.minutes, got, tt.want)
		}
	}
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		time string
		want string
	}{
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"00:15", "12:15 AM"},
	}

	for _, tt := range tests {
		got, err := Format12Hour(tt.time)
		if err != nil {
			t.Fatalf("Format12Hour(%q) failed: %v", tt.time, err)
		}
		if got != tt.want {
			t.Errorf("Format12Hour(%q) = %q, want %q", tt.time, got, tt.want)
		}
	}
}

func TestTimeMinutesRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "12:30", "23:59"} {
		mins, err := TimeToMinutes(s)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q) failed: %v", s, err)
		}
		if got := MinutesToTime(mins); got != s {
			t.Errorf("MinutesToTime(TimeToMinutes(%q)) = %q", s, got)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-27", true},
		{"2026-02-30", false},
		{"27/08/2026", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

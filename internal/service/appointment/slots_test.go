package appointment

import (
	"testing"
	"time"
)

func TestDaySlots(t *testing.T) {
	slots := DaySlots()

	if len(slots) != SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", SlotsPerDay, len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0])
	}
	if slots[len(slots)-1] != "15:30" {
		t.Errorf("last slot = %q, want 15:30", slots[len(slots)-1])
	}
	if slots[1] != "08:30" {
		t.Errorf("second slot = %q, want 08:30", slots[1])
	}
}

func TestOnGrid(t *testing.T) {
	mk := func(h, m, s int) time.Time {
		return time.Date(2026, 3, 2, h, m, s, 0, time.UTC)
	}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"first slot", mk(8, 0, 0), true},
		{"half hour", mk(10, 30, 0), true},
		{"last slot", mk(15, 30, 0), true},
		{"before opening", mk(7, 30, 0), false},
		{"after last slot", mk(16, 0, 0), false},
		{"off-grid minute", mk(9, 15, 0), false},
		{"nonzero seconds", mk(9, 0, 30), false},
		{"midnight", mk(0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnGrid(tt.t); got != tt.want {
				t.Errorf("OnGrid(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"monday", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), false},
		{"friday", time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC), true},
		{"sunday", time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.t); got != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWireTime(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := "2026-03-02 09:30:00"
		parsed, err := ParseWireTime(in)
		if err != nil {
			t.Fatalf("ParseWireTime: %v", err)
		}
		if got := FormatWireTime(parsed); got != in {
			t.Errorf("FormatWireTime = %q, want %q", got, in)
		}
	})

	t.Run("rejects ISO format", func(t *testing.T) {
		if _, err := ParseWireTime("2026-03-02T09:30:00Z"); err == nil {
			t.Error("expected error for ISO 8601 input")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := ParseWireTime("not-a-time"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestParseWireDate(t *testing.T) {
	d, err := ParseWireDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseWireDate: %v", err)
	}
	if d.Hour() != 0 || d.Day() != 2 {
		t.Errorf("unexpected parse result: %v", d)
	}

	if _, err := ParseWireDate("02/03/2026"); err == nil {
		t.Error("expected error for slash format")
	}
}

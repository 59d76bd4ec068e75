package appointment

import (
	"fmt"
	"time"
)

// The booking calendar is a fixed half-hour grid: 16 slots per day from
// 08:00 to 15:30. Times are minute-granular; seconds are always zero.
const (
	SlotInterval = 30 * time.Minute
	DayStartHour = 8
	SlotsPerDay  = 16
)

// WireTimeLayout is the format appointment times travel in over HTTP:
// space-separated date and time with zero seconds.
const WireTimeLayout = "2006-01-02 15:04:05"

// SlotLabelLayout is the short "HH:mm" form used for booked-slot listings.
const SlotLabelLayout = "15:04"

// DaySlots returns the 16 slot labels of a working day, "08:00" ... "15:30".
func DaySlots() []string {
	out := make([]string, 0, SlotsPerDay)
	t := time.Date(2000, 1, 1, DayStartHour, 0, 0, 0, time.UTC)
	for i := 0; i < SlotsPerDay; i++ {
		out = append(out, t.Format(SlotLabelLayout))
		t = t.Add(SlotInterval)
	}
	return out
}

// OnGrid reports whether t falls on a bookable slot boundary.
func OnGrid(t time.Time) bool {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	if t.Minute() != 0 && t.Minute() != 30 {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	first := DayStartHour * 60
	last := first + (SlotsPerDay-1)*int(SlotInterval.Minutes())
	return minutes >= first && minutes <= last
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ParseWireTime parses the wire format into a UTC time.
func ParseWireTime(s string) (time.Time, error) {
	t, err := time.Parse(WireTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}
	return t.UTC(), nil
}

// FormatWireTime renders t in the wire format.
func FormatWireTime(t time.Time) string {
	return t.UTC().Format(WireTimeLayout)
}

// ParseWireDate parses a bare "YYYY-MM-DD" date.
func ParseWireDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}
	return t.UTC(), nil
}

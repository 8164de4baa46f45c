package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"agenda-service/internal/pkg/constvars"
)

// ParseClock converts an HH:MM string into minutes from midnight.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// NewTimeSlot builds a slot from an HH:MM start time and a duration.
func NewTimeSlot(timeOfDay string, durationMinutes int) (TimeSlot, bool) {
	start, ok := ParseClock(timeOfDay)
	if !ok {
		return TimeSlot{}, false
	}
	return TimeSlot{StartMinutes: start, DurationMinutes: durationMinutes}, true
}

// FormatMinutes renders minutes from midnight back into HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WithinHours reports whether a start time falls inside opening hours.
// Starts do not have to align to the suggestion grid; clients may book
// any minute as long as the day window holds.
func WithinHours(timeOfDay string) bool {
	start, ok := ParseClock(timeOfDay)
	if !ok {
		return false
	}
	open := constvars.BookingGridOpenHour * 60
	close := constvars.BookingGridCloseHour * 60
	return start >= open && start < close
}

// GridTimes lists every bookable start time for a day, in ascending order.
func GridTimes() []string {
	open := constvars.BookingGridOpenHour * 60
	close := constvars.BookingGridCloseHour * 60
	times := make([]string, 0, (close-open)/constvars.BookingGridStepMinutes)
	for m := open; m < close; m += constvars.BookingGridStepMinutes {
		times = append(times, FormatMinutes(m))
	}
	return times
}

package schedule

// TimeSlot is a booked interval within a single day, expressed in
// minutes from midnight. The interval is half-open: [Start, Start+Duration).
type TimeSlot struct {
	StartMinutes    int
	DurationMinutes int
}

func (s TimeSlot) EndMinutes() int {
	return s.StartMinutes + s.DurationMinutes
}

// Overlaps reports whether two slots on the same worker and date collide.
// A slot with zero or negative duration is degenerate and never overlaps
// anything. Back-to-back slots do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if s.DurationMinutes <= 0 || other.DurationMinutes <= 0 {
		return false
	}
	return s.StartMinutes < other.EndMinutes() && other.StartMinutes < s.EndMinutes()
}

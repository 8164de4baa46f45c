package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotOverlaps(t *testing.T) {
	t.Run("partial overlap is detected both directions", func(t *testing.T) {
		a, _ := NewTimeSlot("10:00", 30)
		b, _ := NewTimeSlot("10:15", 15)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("contained interval overlaps", func(t *testing.T) {
		a, _ := NewTimeSlot("10:00", 90)
		b, _ := NewTimeSlot("10:30", 30)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("back to back slots do not overlap", func(t *testing.T) {
		a, _ := NewTimeSlot("10:00", 30)
		b, _ := NewTimeSlot("10:30", 30)
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("disjoint slots do not overlap", func(t *testing.T) {
		a, _ := NewTimeSlot("09:00", 30)
		b, _ := NewTimeSlot("15:00", 60)
		assert.False(t, a.Overlaps(b))
	})

	t.Run("zero duration never overlaps", func(t *testing.T) {
		a, _ := NewTimeSlot("10:00", 0)
		b, _ := NewTimeSlot("10:00", 60)
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{" 10:00 ", 600, true},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"10", 0, false},
		{"ten:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range testCases {
		minutes, ok := ParseClock(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, minutes, "input %q", tc.input)
		}
	}
}

func TestWithinHours(t *testing.T) {
	assert.True(t, WithinHours("09:00"))
	assert.True(t, WithinHours("13:30"))
	assert.True(t, WithinHours("17:30"))
	assert.True(t, WithinHours("10:15"))
	assert.False(t, WithinHours("18:00"))
	assert.False(t, WithinHours("08:30"))
	assert.False(t, WithinHours("bogus"))
}

func TestGridTimes(t *testing.T) {
	times := GridTimes()
	assert.Len(t, times, 18)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:30", times[len(times)-1])
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "17:30", FormatMinutes(1050))
}

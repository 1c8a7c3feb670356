package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mar10 = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mar11 = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	mar12 = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
)

func fullSelection() Selection {
	s := NewSelection()
	s = Apply(s, SelectStartDate{Date: mar10})
	s = Apply(s, SelectStartHour{Hour: 9})
	s = Apply(s, SelectEndDate{Date: mar10})
	s = Apply(s, SelectEndHour{Hour: 13})
	return s
}

func TestSelectionStateProgression(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, StateNoStart, s.State())

	s = Apply(s, SelectStartDate{Date: mar10})
	assert.Equal(t, StateHasStart, s.State())

	s = Apply(s, SelectStartHour{Hour: 9})
	assert.Equal(t, StateHasStartAndHour, s.State())

	s = Apply(s, SelectEndDate{Date: mar10})
	assert.Equal(t, StateHasStartAndHour, s.State())

	s = Apply(s, SelectEndHour{Hour: 13})
	assert.Equal(t, StateFullWindow, s.State())
}

func TestSelectStartDateCascades(t *testing.T) {
	s := fullSelection()
	require.Equal(t, StateFullWindow, s.State())

	s = Apply(s, SelectStartDate{Date: mar11})
	assert.Equal(t, StateHasStart, s.State())
	assert.False(t, s.HasStartHour())
	assert.True(t, s.EndDate.IsZero())
	assert.False(t, s.HasEndHour())
}

func TestSelectStartHourClearsDropOff(t *testing.T) {
	s := fullSelection()
	s = Apply(s, SelectStartHour{Hour: 15})
	assert.Equal(t, StateHasStartAndHour, s.State())
	assert.True(t, s.EndDate.IsZero())
}

func TestSelectEndDateClearsStaleEndHour(t *testing.T) {
	s := fullSelection()
	s = Apply(s, SelectEndDate{Date: mar11})
	assert.Equal(t, StateHasStartAndHour, s.State())
	assert.False(t, s.HasEndHour())
}

func TestClearEndDateStepsBack(t *testing.T) {
	s := fullSelection()
	s = Apply(s, ClearEndDate{})
	assert.Equal(t, StateHasStartAndHour, s.State())
}

func TestEventsIgnoredOutOfOrder(t *testing.T) {
	s := NewSelection()

	// no start date yet: hour and drop-off events cannot apply
	assert.Equal(t, s, Apply(s, SelectStartHour{Hour: 9}))
	assert.Equal(t, s, Apply(s, SelectEndDate{Date: mar11}))
	assert.Equal(t, s, Apply(s, SelectEndHour{Hour: 13}))

	s = Apply(s, SelectStartDate{Date: mar10})
	assert.Equal(t, s, Apply(s, SelectEndDate{Date: mar11}), "end date needs a pick-up hour first")
}

func TestSelectionWindow(t *testing.T) {
	s := fullSelection()
	w, err := s.Window(UnitHour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), w.StartDate)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), w.EndDate)

	_, err = Apply(s, ClearEndDate{}).Window(UnitHour)
	assert.ErrorIs(t, err, ErrHoursRequired)
}

func TestSelectionWindowHour24RollsToMidnight(t *testing.T) {
	s := NewSelection()
	s = Apply(s, SelectStartDate{Date: mar10})
	s = Apply(s, SelectStartHour{Hour: 20})
	s = Apply(s, SelectEndDate{Date: mar10})
	s = Apply(s, SelectEndHour{Hour: 24})

	w, err := s.Window(UnitHour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), w.EndDate)
}

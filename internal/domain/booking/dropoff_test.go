package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionAt(date time.Time, hour int) Selection {
	s := NewSelection()
	s = Apply(s, SelectStartDate{Date: date})
	s = Apply(s, SelectStartHour{Hour: hour})
	return s
}

func TestDropOffBounds(t *testing.T) {
	s := selectionAt(mar10, 10)

	min, ok := s.MinDropOff()
	require.True(t, ok)
	assert.True(t, min.Date.Equal(mar10))
	assert.Equal(t, 11, min.Hour)

	max, ok := s.MaxDropOff(24)
	require.True(t, ok)
	assert.True(t, max.Date.Equal(mar11))
	assert.Equal(t, 10, max.Hour)
}

func TestDropOffBoundsNeedStartHour(t *testing.T) {
	s := Apply(NewSelection(), SelectStartDate{Date: mar10})
	_, ok := s.MinDropOff()
	assert.False(t, ok)
	_, ok = s.MaxDropOff(24)
	assert.False(t, ok)
}

func TestEndHourOptionsSameDay(t *testing.T) {
	// cap keeps the whole window on the start day
	s := selectionAt(mar10, 9)
	s = Apply(s, SelectEndDate{Date: mar10})

	opts := s.EndHourOptions(4)
	require.NotEmpty(t, opts)
	assert.Equal(t, "10 AM", opts[0])
	assert.Equal(t, "13 PM", opts[len(opts)-1])
	assert.Len(t, opts, 4)
}

func TestEndHourOptionsRolledOverDay(t *testing.T) {
	s := selectionAt(mar10, 10)

	// end date on the start day: everything from hour 11 to end of day
	sameDay := Apply(s, SelectEndDate{Date: mar10})
	opts := sameDay.EndHourOptions(24)
	require.NotEmpty(t, opts)
	assert.Equal(t, "11 AM", opts[0])
	assert.Equal(t, "24 PM", opts[len(opts)-1])

	// end date on the rolled-over day: capped at the max drop-off hour
	nextDay := Apply(s, SelectEndDate{Date: mar11})
	opts = nextDay.EndHourOptions(24)
	require.NotEmpty(t, opts)
	assert.Equal(t, "0 AM", opts[0])
	assert.Equal(t, "10 AM", opts[len(opts)-1])
	assert.Len(t, opts, 11)
}

func TestEndHourOptionsEmptyWithoutEndDate(t *testing.T) {
	s := selectionAt(mar10, 10)
	assert.Nil(t, s.EndHourOptions(24))
}

func TestStartHourOptions(t *testing.T) {
	s := Apply(NewSelection(), SelectStartDate{Date: mar10})

	opts := s.StartHourOptions(time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC))
	require.Len(t, opts, 24, "future date offers the whole day, hour 24 excluded")
	assert.Equal(t, "0 AM", opts[0])
	assert.Equal(t, "23 PM", opts[len(opts)-1])

	// booking for today hides hours already gone by
	opts = s.StartHourOptions(time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC))
	require.NotEmpty(t, opts)
	assert.Equal(t, "16 PM", opts[0])

	assert.Nil(t, s.StartHourOptions(time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)))
}

func TestEndDateCandidates(t *testing.T) {
	s := selectionAt(mar10, 10)
	slots := []time.Time{mar10, mar11, mar12}

	got := s.EndDateCandidates(slots, 24)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(mar10))
	assert.True(t, got[1].Equal(mar11))

	// short cap keeps everything on the start day
	got = s.EndDateCandidates(slots, 4)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(mar10))
}

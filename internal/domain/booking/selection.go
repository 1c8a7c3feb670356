package booking

import (
	"time"
)

// SelectionState describes how far an interactive hourly-booking selection
// has progressed. A quote request may only fire from StateFullWindow.
type SelectionState string

const (
	StateNoStart         SelectionState = "NO_START"
	StateHasStart        SelectionState = "HAS_START"
	StateHasStartAndHour SelectionState = "HAS_START_AND_HOUR"
	StateFullWindow      SelectionState = "HAS_FULL_WINDOW"
)

const hourUnset = -1

// Selection holds the fields of an in-progress hourly booking. It is an
// immutable value: Apply returns a new Selection and never mutates the
// receiver, so stale downstream choices cannot survive an upstream change.
type Selection struct {
	StartDate time.Time
	StartHour int
	EndDate   time.Time
	EndHour   int
}

// NewSelection returns an empty selection with both hour fields unset.
func NewSelection() Selection {
	return Selection{StartHour: hourUnset, EndHour: hourUnset}
}

func (s Selection) HasStartHour() bool { return s.StartHour != hourUnset }
func (s Selection) HasEndHour() bool   { return s.EndHour != hourUnset }

// State derives the machine state from which fields are populated.
func (s Selection) State() SelectionState {
	switch {
	case s.StartDate.IsZero():
		return StateNoStart
	case !s.HasStartHour():
		return StateHasStart
	case s.EndDate.IsZero() || !s.HasEndHour():
		return StateHasStartAndHour
	}
	return StateFullWindow
}

// Event is a user action against the selection.
type Event interface {
	apply(Selection) Selection
}

// SelectStartDate picks the pick-up date. Every downstream field is cleared:
// the hour options and legal drop-off bounds all derive from the start.
type SelectStartDate struct{ Date time.Time }

func (e SelectStartDate) apply(s Selection) Selection {
	next := NewSelection()
	next.StartDate = e.Date
	return next
}

// SelectStartHour picks the pick-up hour. Drop-off choices are cleared since
// the legal drop-off interval moves with the pick-up time.
type SelectStartHour struct{ Hour int }

func (e SelectStartHour) apply(s Selection) Selection {
	if s.StartDate.IsZero() {
		return s
	}
	s.StartHour = e.Hour
	s.EndDate = time.Time{}
	s.EndHour = hourUnset
	return s
}

// SelectEndDate picks the drop-off date and invalidates any previously
// chosen drop-off hour.
type SelectEndDate struct{ Date time.Time }

func (e SelectEndDate) apply(s Selection) Selection {
	if s.State() != StateHasStartAndHour && s.State() != StateFullWindow {
		return s
	}
	s.EndDate = e.Date
	s.EndHour = hourUnset
	return s
}

// SelectEndHour picks the drop-off hour, completing the window.
type SelectEndHour struct{ Hour int }

func (e SelectEndHour) apply(s Selection) Selection {
	if s.EndDate.IsZero() {
		return s
	}
	s.EndHour = e.Hour
	return s
}

// ClearEndDate steps back from a full window to StateHasStartAndHour.
type ClearEndDate struct{}

func (e ClearEndDate) apply(s Selection) Selection {
	s.EndDate = time.Time{}
	s.EndHour = hourUnset
	return s
}

// Apply runs one transition. Events that do not apply in the current state
// leave the selection unchanged.
func Apply(s Selection, ev Event) Selection {
	return ev.apply(s)
}

// Window assembles the booking window once the selection is complete.
// Hour 24 naturally becomes midnight of the following day when the concrete
// timestamps are built.
func (s Selection) Window(unit UnitType) (Window, error) {
	if s.State() != StateFullWindow {
		return Window{}, ErrHoursRequired
	}
	w := Window{
		StartDate: atHour(s.StartDate, s.StartHour),
		EndDate:   atHour(s.EndDate, s.EndHour),
		Unit:      unit,
	}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func atHour(date time.Time, hour int) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

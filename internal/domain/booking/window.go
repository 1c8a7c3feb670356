package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow  = errors.New("booking: window end must be after start")
	ErrHoursRequired  = errors.New("booking: hourly window needs both pick-up and drop-off hours")
	ErrUnknownUnit    = errors.New("booking: unknown unit type")
	ErrNoLegalWindow  = errors.New("booking: no legal drop-off time for this selection")
)

// UnitType identifies what a single unit of the listing price buys.
type UnitType string

const (
	UnitHour  UnitType = "hour"
	UnitDay   UnitType = "day"
	UnitNight UnitType = "night"
)

// ParseUnitType maps wire values, including the line-item form used by the
// marketplace API ("line-item/hour"), onto a UnitType.
func ParseUnitType(raw string) (UnitType, error) {
	switch raw {
	case "hour", "line-item/hour":
		return UnitHour, nil
	case "day", "line-item/day":
		return UnitDay, nil
	case "night", "line-item/night":
		return UnitNight, nil
	}
	return "", ErrUnknownUnit
}

// Window is the requested rental period. For hourly rentals StartDate and
// EndDate carry the full pick-up and drop-off timestamps; for day and night
// rentals only the calendar dates matter.
type Window struct {
	StartDate time.Time
	EndDate   time.Time
	Unit      UnitType
}

// Validate checks the window orders correctly for its unit type.
func (w Window) Validate() error {
	switch w.Unit {
	case UnitHour, UnitDay, UnitNight:
	default:
		return ErrUnknownUnit
	}
	if w.StartDate.IsZero() || w.EndDate.IsZero() || !w.EndDate.After(w.StartDate) {
		return ErrInvalidWindow
	}
	return nil
}

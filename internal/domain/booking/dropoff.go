package booking

import (
	"time"

	"rentgear/internal/domain/shared/hourgrid"
)

// optionGrid lists the 25 selectable hour boundaries of a day, 0 through 24,
// in the display form the booking form uses.
func optionGrid() []string {
	grid := make([]string, hourgrid.DayHours+1)
	for h := 0; h <= hourgrid.DayHours; h++ {
		grid[h] = hourgrid.MeridiemLabel(h)
	}
	return grid
}

// MinDropOff is the earliest legal drop-off: one hour after pick-up.
func (s Selection) MinDropOff() (hourgrid.DayHour, bool) {
	if s.StartDate.IsZero() || !s.HasStartHour() {
		return hourgrid.DayHour{}, false
	}
	return hourgrid.AddTime(s.StartDate, s.StartHour, 1), true
}

// MaxDropOff is the latest legal drop-off given the listing's maximum usage
// duration. When the cap pushes past 24:00 the date rolls to the next
// calendar day rather than clamping.
func (s Selection) MaxDropOff(maxUsageHours int) (hourgrid.DayHour, bool) {
	if s.StartDate.IsZero() || !s.HasStartHour() {
		return hourgrid.DayHour{}, false
	}
	return hourgrid.AddTime(s.StartDate, s.StartHour, maxUsageHours), true
}

// StartHourOptions lists selectable pick-up hours for the chosen start date.
// Hours already gone by are removed when the start date is today; hour 24 is
// never a valid pick-up time.
func (s Selection) StartHourOptions(now time.Time) []string {
	if s.StartDate.IsZero() {
		return nil
	}
	grid := optionGrid()
	from := 0
	today := hourgrid.DayHour{Date: now}
	if today.SameDay(hourgrid.DayHour{Date: s.StartDate}) {
		from = now.UTC().Hour() + 1
	}
	if from >= hourgrid.DayHours {
		return nil
	}
	return grid[from : len(grid)-1]
}

// EndHourOptions lists selectable drop-off hours for the chosen end date,
// sliced by the min and max drop-off bounds. Nil until both an end date and
// a pick-up hour exist.
func (s Selection) EndHourOptions(maxUsageHours int) []string {
	if s.EndDate.IsZero() {
		return nil
	}
	min, ok := s.MinDropOff()
	if !ok {
		return nil
	}
	max, _ := s.MaxDropOff(maxUsageHours)
	grid := optionGrid()
	end := hourgrid.DayHour{Date: s.EndDate}

	if end.SameDay(min) {
		upper := len(grid)
		if min.SameDay(max) {
			upper = max.Hour + 1
		}
		if min.Hour >= upper {
			return nil
		}
		return grid[min.Hour:upper]
	}
	return grid[:max.Hour+1]
}

// EndDateAllowed reports whether a calendar day is reachable as a drop-off
// date: it must carry either the minimum or the maximum drop-off bound.
func (s Selection) EndDateAllowed(date time.Time, maxUsageHours int) bool {
	min, ok := s.MinDropOff()
	if !ok {
		return false
	}
	max, _ := s.MaxDropOff(maxUsageHours)
	day := hourgrid.DayHour{Date: date}
	return day.SameDay(min) || day.SameDay(max)
}

// EndDateCandidates filters availability slot starts down to the days that
// are reachable as drop-off dates for this selection.
func (s Selection) EndDateCandidates(slots []time.Time, maxUsageHours int) []time.Time {
	var out []time.Time
	for _, slot := range slots {
		if s.EndDateAllowed(slot, maxUsageHours) {
			out = append(out, slot)
		}
	}
	return out
}

package freeplan

import (
	"rentgear/internal/domain/shared/hourgrid"
)

// AllStartHours lists every selectable range start, "00:00" through "23:00".
func AllStartHours() []string {
	out := make([]string, 0, hourgrid.DayHours)
	for h := 0; h < hourgrid.DayHours; h++ {
		out = append(out, hourgrid.Label(h))
	}
	return out
}

// AllEndHours lists every selectable range end, "01:00" through "24:00".
func AllEndHours() []string {
	out := make([]string, 0, hourgrid.DayHours)
	for h := 1; h <= hourgrid.DayHours; h++ {
		out = append(out, hourgrid.Label(h))
	}
	return out
}

// EntryBoundaries collects the hour labels already consumed by the complete
// entries other than the one at index. For start candidates the labels cover
// [start, end) of each entry; for end candidates (start, end], since a range
// may legally end where another begins.
func EntryBoundaries(entries []Entry, index int, forStart bool) []string {
	diff := 1
	if forStart {
		diff = 0
	}
	var taken []string
	for i, e := range entries {
		if i == index || !e.complete() {
			continue
		}
		start, sOK := e.startHour()
		end, eOK := e.endHour()
		if !sOK || !eOK {
			continue
		}
		for h := start; h < end; h++ {
			taken = append(taken, hourgrid.Label(h+diff))
		}
	}
	return taken
}

// UnreservedStartHours removes the hours other entries occupy from the full
// start-hour grid.
func UnreservedStartHours(entries []Entry, index int) []string {
	return without(AllStartHours(), EntryBoundaries(entries, index, true))
}

// UnreservedEndHours removes the hours other entries occupy from the full
// end-hour grid.
func UnreservedEndHours(entries []Entry, index int) []string {
	return without(AllEndHours(), EntryBoundaries(entries, index, false))
}

// AvailableStartHours narrows start-hour candidates for the entry at index.
// With no end time chosen yet every candidate is legal. Otherwise a start
// must leave room before the fixed end time without intruding into the
// preceding entry's span; a missing bound is unbounded, not zero availability.
func AvailableStartHours(allHours []string, entries []Entry, index int) []string {
	current := entries[index]
	if current.EndTime == "" {
		return allHours
	}
	ownEnd, ok := current.endHour()
	if !ok {
		return allHours
	}

	prev := neighbor(entries, current, -1)
	if prev == nil || prev.EndTime == "" {
		return filterHours(allHours, func(h int) bool { return h < ownEnd })
	}
	prevEnd, ok := prev.endHour()
	if !ok {
		return filterHours(allHours, func(h int) bool { return h < ownEnd })
	}
	return filterHours(allHours, func(h int) bool { return h >= prevEnd && h < ownEnd })
}

// AvailableEndHours narrows end-hour candidates for the entry at index. No
// start time means nothing is selectable yet. Otherwise an end must come
// after the chosen start and at latest where the next entry begins.
func AvailableEndHours(allHours []string, entries []Entry, index int) []string {
	current := entries[index]
	if current.StartTime == "" {
		return []string{}
	}
	ownStart, ok := current.startHour()
	if !ok {
		return []string{}
	}

	next := neighbor(entries, current, +1)
	if next == nil || next.StartTime == "" {
		return filterHours(allHours, func(h int) bool { return h > ownStart })
	}
	nextStart, ok := next.startHour()
	if !ok {
		return filterHours(allHours, func(h int) bool { return h > ownStart })
	}
	return filterHours(allHours, func(h int) bool { return h > ownStart && h <= nextStart })
}

// neighbor finds the entry adjacent to current in start-time order.
func neighbor(entries []Entry, current Entry, offset int) *Entry {
	sorted := SortedByStart(entries)
	for i := range sorted {
		if sorted[i].sameAs(current) {
			j := i + offset
			if j < 0 || j >= len(sorted) {
				return nil
			}
			return &sorted[j]
		}
	}
	return nil
}

func filterHours(labels []string, keep func(h int) bool) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		h, err := hourgrid.ParseHour(label)
		if err != nil {
			continue
		}
		if keep(h) {
			out = append(out, label)
		}
	}
	return out
}

func without(labels, taken []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		found := false
		for _, t := range taken {
			if t == label {
				found = true
				break
			}
		}
		if !found {
			out = append(out, label)
		}
	}
	return out
}

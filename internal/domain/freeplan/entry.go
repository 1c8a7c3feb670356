package freeplan

import (
	"errors"
	"sort"

	"rentgear/internal/domain/shared/hourgrid"
)

var ErrBadEntry = errors.New("freeplan: entry has an unparseable hour label")

// Entry is one weekly free-time range on a listing's availability template.
// Times are hour labels ("09:00" or "9 AM"); either side may still be unset
// while the host is editing the template.
type Entry struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (e Entry) complete() bool {
	return e.StartTime != "" && e.EndTime != ""
}

func (e Entry) sameAs(other Entry) bool {
	return e.StartTime == other.StartTime && e.EndTime == other.EndTime
}

// startHour returns the parsed start hour, or false when unset/unparseable.
func (e Entry) startHour() (int, bool) {
	if e.StartTime == "" {
		return 0, false
	}
	h, err := hourgrid.ParseHour(e.StartTime)
	if err != nil {
		return 0, false
	}
	return h, true
}

func (e Entry) endHour() (int, bool) {
	if e.EndTime == "" {
		return 0, false
	}
	h, err := hourgrid.ParseHour(e.EndTime)
	if err != nil {
		return 0, false
	}
	return h, true
}

// SortedByStart returns a copy ordered by numeric start hour. Entries with
// no start time yet keep their relative position.
func SortedByStart(entries []Entry) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := sorted[i].startHour()
		b, bOK := sorted[j].startHour()
		if !aOK || !bOK {
			return false
		}
		return a < b
	})
	return sorted
}

// Normalize flattens a free-time template into the ordered run of hour
// labels the listing page displays. Adjacent contiguous entries are merged
// by dropping the duplicated join hour; which hours are free never changes.
// Display only: booking legality is resolved separately.
func Normalize(entries []Entry) ([]string, error) {
	var out []string
	for _, e := range SortedByStart(entries) {
		if !e.complete() {
			continue
		}
		start, ok := e.startHour()
		if !ok {
			return nil, ErrBadEntry
		}
		end, ok := e.endHour()
		if !ok {
			return nil, ErrBadEntry
		}
		if end < start {
			return nil, ErrBadEntry
		}
		first := hourgrid.MeridiemLabel(start)
		if len(out) > 0 && out[len(out)-1] == first {
			out = out[:len(out)-1]
		}
		for h := start; h <= end; h++ {
			out = append(out, hourgrid.MeridiemLabel(h))
		}
	}
	return out, nil
}

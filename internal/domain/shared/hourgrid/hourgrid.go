package hourgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidHourLabel = errors.New("hourgrid: invalid hour label")

// DayHours is the number of selectable boundaries on a single day. Hour 24
// is a valid end-of-day boundary, distinct from hour 0 of the next day.
const DayHours = 24

// ParseHour extracts the hour from a label such as "09:00", "9:00" or
// "9 AM". Any non-digit characters are ignored, matching the labels the
// booking form produces.
func ParseHour(label string) (int, error) {
	var digits strings.Builder
	for _, r := range label {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			// labels carry the hour up front; trailing ":00" minutes
			// would otherwise glue onto it
			break
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourLabel, label)
	}
	h, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourLabel, label)
	}
	if h < 0 || h > DayHours {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourLabel, label)
	}
	return h, nil
}

// Label renders an hour as a zero-padded "HH:00" string.
func Label(h int) string {
	if h > 9 {
		return fmt.Sprintf("%d:00", h)
	}
	return fmt.Sprintf("0%d:00", h)
}

// MeridiemLabel renders an hour the way the listing page displays free-time
// runs. Hours below 13 are labelled AM, the rest PM; noon stays "12 AM" to
// match the established display contract.
func MeridiemLabel(h int) string {
	if h < 13 {
		return fmt.Sprintf("%d AM", h)
	}
	return fmt.Sprintf("%d PM", h)
}

// DayHour is a calendar date paired with an hour-of-day boundary on it.
// Hour may be 24, meaning the very end of Date.
type DayHour struct {
	Date time.Time
	Hour int
}

// AddTime advances hourOfDay on date by delta hours, rolling the date
// forward past midnight as needed. An exact multiple of 24 stays on the
// previous day as hour 24 so that end-of-day bookings remain distinct from
// start-of-day ones.
func AddTime(date time.Time, hourOfDay, delta int) DayHour {
	sum := hourOfDay + delta
	days := sum / DayHours
	rem := sum % DayHours
	if rem == 0 && sum > 0 {
		days--
		rem = DayHours
	}
	return DayHour{Date: truncateToDay(date).AddDate(0, 0, days), Hour: rem}
}

// SameDay reports whether both values fall on the same calendar day.
func (d DayHour) SameDay(other DayHour) bool {
	return truncateToDay(d.Date).Equal(truncateToDay(other.Date))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

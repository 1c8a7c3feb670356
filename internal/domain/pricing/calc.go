package pricing

import (
	"fmt"
	"time"

	"rentgear/internal/domain/booking"
	"rentgear/internal/domain/shared/money"
)

// QuantityFromDates turns a rental window into billable units. Hourly
// rentals bill whole hours (fractions floored); day and night rentals bill
// whole calendar days. A non-positive quantity is an invalid window.
func QuantityFromDates(start, end time.Time, unit booking.UnitType) (int64, error) {
	if !end.After(start) {
		return 0, booking.ErrInvalidWindow
	}
	var qty int64
	switch unit {
	case booking.UnitHour:
		qty = int64(end.Sub(start).Hours())
	case booking.UnitDay, booking.UnitNight:
		qty = int64(truncateToDay(end).Sub(truncateToDay(start)).Hours() / 24)
	default:
		return 0, booking.ErrUnknownUnit
	}
	if qty <= 0 {
		return 0, booking.ErrInvalidWindow
	}
	return qty, nil
}

// TotalFromLineItems sums the derived totals of the given items. All items
// must share one currency; a mismatch is a hard failure, never a conversion.
func TotalFromLineItems(items []LineItem) (money.Money, error) {
	var total money.Money
	for _, li := range items {
		rowTotal, err := li.Total()
		if err != nil {
			return money.Money{}, err
		}
		if total.Currency == "" {
			total = rowTotal
			continue
		}
		total, err = total.Add(rowTotal)
		if err != nil {
			return money.Money{}, fmt.Errorf("%w: %s vs %s", ErrUnsupportedCurrency, total.Currency, rowTotal.Currency)
		}
	}
	return total, nil
}

// ApplyCommission computes percentage/100 of the base total, rounded half
// away from zero. The sign of the result follows the sign of the percentage.
func ApplyCommission(baseTotal money.Money, percentage float64) money.Money {
	return baseTotal.MulPercent(percentage)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

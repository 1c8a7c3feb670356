package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentgear/internal/domain/booking"
	"rentgear/internal/domain/shared/money"
)

func qty(v int64) *int64 { return &v }

func pct(v float64) *float64 { return &v }

func TestQuantityFromDates(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		unit    booking.UnitType
		want    int64
		wantErr error
	}{
		{"four hour rental", day.Add(9 * time.Hour), day.Add(13 * time.Hour), booking.UnitHour, 4, nil},
		{"fractional hours floored", day.Add(9 * time.Hour), day.Add(13*time.Hour + 30*time.Minute), booking.UnitHour, 4, nil},
		{"hourly across midnight", day.Add(23 * time.Hour), day.Add(25 * time.Hour), booking.UnitHour, 2, nil},
		{"two calendar days", day, day.AddDate(0, 0, 2), booking.UnitDay, 2, nil},
		{"night units count days", day.Add(15 * time.Hour), day.AddDate(0, 0, 1).Add(11 * time.Hour), booking.UnitNight, 1, nil},
		{"end equals start", day, day, booking.UnitHour, 0, booking.ErrInvalidWindow},
		{"end before start", day.Add(2 * time.Hour), day, booking.UnitHour, 0, booking.ErrInvalidWindow},
		{"under one hour floors to zero", day, day.Add(30 * time.Minute), booking.UnitHour, 0, booking.ErrInvalidWindow},
		{"unknown unit", day, day.AddDate(0, 0, 1), booking.UnitType("week"), 0, booking.ErrUnknownUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuantityFromDates(tt.start, tt.end, tt.unit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalFromLineItems(t *testing.T) {
	items := []LineItem{
		{Code: CodeHour, UnitPrice: money.Must(1000, "USD"), Quantity: qty(4)},
		{Code: "line-item/cleaning-fee", UnitPrice: money.Must(500, "USD"), Quantity: qty(1)},
		{Code: CodeCustomerCommission, UnitPrice: money.Must(4000, "USD"), Percentage: pct(15)},
	}

	total, err := TotalFromLineItems(items)
	require.NoError(t, err)
	assert.Equal(t, money.Must(5100, "USD"), total)

	// sum is order independent
	reversed := []LineItem{items[2], items[0], items[1]}
	totalRev, err := TotalFromLineItems(reversed)
	require.NoError(t, err)
	assert.Equal(t, total, totalRev)
}

func TestTotalFromLineItemsCurrencyMismatch(t *testing.T) {
	items := []LineItem{
		{Code: CodeHour, UnitPrice: money.Must(1000, "USD"), Quantity: qty(2)},
		{Code: "line-item/insurance", UnitPrice: money.Must(700, "EUR"), Quantity: qty(1)},
	}
	_, err := TotalFromLineItems(items)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestTotalFromLineItemsSeatsAndUnits(t *testing.T) {
	seats, units := int64(3), int64(2)
	items := []LineItem{{Code: "line-item/units", UnitPrice: money.Must(250, "USD"), Seats: &seats, Units: &units}}
	total, err := TotalFromLineItems(items)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total.Amount)
}

func TestApplyCommission(t *testing.T) {
	base := money.Must(4000, "USD")
	assert.Equal(t, int64(-1000), ApplyCommission(base, -25).Amount)
	assert.Equal(t, int64(600), ApplyCommission(base, 15).Amount)
	assert.Equal(t, int64(2200), ApplyCommission(base, 55).Amount)
}

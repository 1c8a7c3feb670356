package pricing

import (
	"errors"
	"fmt"

	"rentgear/internal/domain/booking"
	"rentgear/internal/domain/shared/money"
)

var (
	ErrMissingPrice        = errors.New("pricing: listing price is missing")
	ErrUnsupportedCurrency = errors.New("pricing: unsupported currency")
	ErrQuoteTooLarge       = errors.New("pricing: quote exceeds the line item limit")
	ErrAmbiguousPricing    = errors.New("pricing: line item needs exactly one of quantity, percentage, or seats with units")
	ErrCodeTooLong         = errors.New("pricing: line item code exceeds 64 characters")
)

// Line item codes understood by the marketplace transaction engine. Codes
// outside this set are passed through untouched for display.
const (
	CodeHour               = "line-item/hour"
	CodeDay                = "line-item/day"
	CodeNight              = "line-item/night"
	CodeProviderCommission = "line-item/provider-commission"
	CodeCustomerCommission = "line-item/customer-commission"
)

// MaxQuoteItems caps a single quote. Well-formed quotes stay far below it.
const MaxQuoteItems = 50

const maxCodeLength = 64

// Party identifies whose breakdown a line item belongs to.
type Party string

const (
	PartyCustomer Party = "customer"
	PartyProvider Party = "provider"
)

// LineItem is one priced row of a quote. Exactly one pricing mode must be
// populated: Quantity, Percentage, or Seats together with Units. LineTotal
// is derived; when it arrives populated from the marketplace API it is
// authoritative and never recomputed.
type LineItem struct {
	Code       string
	UnitPrice  money.Money
	Quantity   *int64
	Percentage *float64
	Seats      *int64
	Units      *int64
	LineTotal  money.Money
	IncludeFor []Party
}

// HasTotal reports whether the item already carries a line total.
func (li LineItem) HasTotal() bool {
	return li.LineTotal.Currency != ""
}

// Validate checks the code bound and that the pricing mode is unambiguous.
func (li LineItem) Validate() error {
	if len(li.Code) > maxCodeLength {
		return fmt.Errorf("%w: %q", ErrCodeTooLong, li.Code[:16]+"...")
	}
	modes := 0
	if li.Quantity != nil {
		modes++
	}
	if li.Percentage != nil {
		modes++
	}
	if li.Seats != nil || li.Units != nil {
		if li.Seats == nil || li.Units == nil {
			return fmt.Errorf("%w: code %s", ErrAmbiguousPricing, li.Code)
		}
		modes++
	}
	if modes != 1 {
		return fmt.Errorf("%w: code %s", ErrAmbiguousPricing, li.Code)
	}
	return nil
}

// Total derives the row total from the populated pricing mode.
func (li LineItem) Total() (money.Money, error) {
	if err := li.Validate(); err != nil {
		return money.Money{}, err
	}
	switch {
	case li.Quantity != nil:
		return li.UnitPrice.Multiply(*li.Quantity), nil
	case li.Percentage != nil:
		return li.UnitPrice.MulPercent(*li.Percentage), nil
	default:
		return li.UnitPrice.Multiply(*li.Seats * *li.Units), nil
	}
}

// IncludedFor reports whether the row belongs to the given party's breakdown.
func (li LineItem) IncludedFor(p Party) bool {
	for _, party := range li.IncludeFor {
		if party == p {
			return true
		}
	}
	return false
}

// Quote is an ordered sequence of line items. Order is assembly order (base
// first, then commissions) and is preserved for display.
type Quote []LineItem

// TotalFor sums the rows included in a party's breakdown: what the customer
// pays, or what the provider is paid out.
func (q Quote) TotalFor(p Party) (money.Money, error) {
	var total money.Money
	for _, li := range q {
		if !li.IncludedFor(p) {
			continue
		}
		rowTotal := li.LineTotal
		if !li.HasTotal() {
			var err error
			rowTotal, err = li.Total()
			if err != nil {
				return money.Money{}, err
			}
		}
		if total.Currency == "" {
			total = rowTotal
			continue
		}
		var err error
		total, err = total.Add(rowTotal)
		if err != nil {
			return money.Money{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, rowTotal.Currency)
		}
	}
	return total, nil
}

// BaseCode maps a unit type onto the base line item code.
func BaseCode(unit booking.UnitType) string {
	switch unit {
	case booking.UnitDay:
		return CodeDay
	case booking.UnitNight:
		return CodeNight
	default:
		return CodeHour
	}
}

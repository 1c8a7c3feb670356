package pricing

import (
	"strings"

	"rentgear/internal/domain/booking"
	"rentgear/internal/domain/shared/money"
)

// Assembler builds the canonical three-item quote: base rental, provider
// commission, customer commission. Currency is the marketplace currency;
// listings priced in anything else are rejected rather than converted.
type Assembler struct {
	Currency    string
	Commissions CommissionTable
}

// NewAssembler validates the configuration up front so a misconfigured rate
// table fails at startup, not on the first live quote.
func NewAssembler(currency string, table CommissionTable) (Assembler, error) {
	if len(currency) != 3 {
		return Assembler{}, money.ErrInvalidCurrency
	}
	if err := table.Validate(); err != nil {
		return Assembler{}, err
	}
	return Assembler{Currency: strings.ToUpper(currency), Commissions: table}, nil
}

// BuildQuote produces the three line items for a rental window, in fixed
// order, each with its line total already derived.
func (a Assembler) BuildQuote(unitPrice money.Money, w booking.Window, firstTimeCustomer bool) (Quote, error) {
	if unitPrice.Currency == "" {
		return nil, ErrMissingPrice
	}
	if unitPrice.Currency != a.Currency {
		return nil, ErrUnsupportedCurrency
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	qty, err := QuantityFromDates(w.StartDate, w.EndDate, w.Unit)
	if err != nil {
		return nil, err
	}
	base := LineItem{
		Code:       BaseCode(w.Unit),
		UnitPrice:  unitPrice,
		Quantity:   &qty,
		IncludeFor: []Party{PartyCustomer, PartyProvider},
	}
	baseTotal, err := TotalFromLineItems([]LineItem{base})
	if err != nil {
		return nil, err
	}
	base.LineTotal = baseTotal

	providerPct := a.Commissions.ProviderPercent
	providerCommission := LineItem{
		Code:       CodeProviderCommission,
		UnitPrice:  baseTotal,
		Percentage: &providerPct,
		LineTotal:  ApplyCommission(baseTotal, providerPct),
		IncludeFor: []Party{PartyProvider},
	}

	customerPct := a.Commissions.CustomerPercent(firstTimeCustomer)
	customerCommission := LineItem{
		Code:       CodeCustomerCommission,
		UnitPrice:  baseTotal,
		Percentage: &customerPct,
		LineTotal:  ApplyCommission(baseTotal, customerPct),
		IncludeFor: []Party{PartyCustomer},
	}

	return Quote{base, providerCommission, customerCommission}, nil
}

// NormalizeLineItems fills in missing line totals so every item is fully
// populated for display. Items that already carry a total pass through
// unchanged: the marketplace API is the authoritative quote source and its
// numbers are never overwritten. Unrecognized codes are kept as-is.
func NormalizeLineItems(items []LineItem) (Quote, error) {
	if len(items) > MaxQuoteItems {
		return nil, ErrQuoteTooLarge
	}
	out := make(Quote, 0, len(items))
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, err
		}
		if !li.HasTotal() {
			total, err := li.Total()
			if err != nil {
				return nil, err
			}
			li.LineTotal = total
		}
		out = append(out, li)
	}
	return out, nil
}

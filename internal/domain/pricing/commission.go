package pricing

import "errors"

var (
	ErrProviderPercentSign = errors.New("pricing: provider commission percent must be negative")
	ErrCustomerPercentSign = errors.New("pricing: customer commission percents must be positive")
)

// CommissionTable carries the marketplace commission rates. Rates are
// configuration injected into the assembler, never literals in control flow,
// so operators can vary them without code changes. Provider commission is
// negative: it reduces the provider payout. Customer commission is positive
// with a discounted first-booking tier.
type CommissionTable struct {
	ProviderPercent          float64
	CustomerFirstTimePercent float64
	CustomerStandardPercent  float64
}

// DefaultCommissions returns the rates the marketplace currently runs on.
func DefaultCommissions() CommissionTable {
	return CommissionTable{
		ProviderPercent:          -25,
		CustomerFirstTimePercent: 15,
		CustomerStandardPercent:  55,
	}
}

// Validate enforces the sign conventions the breakdown math relies on.
func (t CommissionTable) Validate() error {
	if t.ProviderPercent >= 0 {
		return ErrProviderPercentSign
	}
	if t.CustomerFirstTimePercent <= 0 || t.CustomerStandardPercent <= 0 {
		return ErrCustomerPercentSign
	}
	return nil
}

// CustomerPercent selects the tier for the given customer.
func (t CommissionTable) CustomerPercent(firstTimeCustomer bool) float64 {
	if firstTimeCustomer {
		return t.CustomerFirstTimePercent
	}
	return t.CustomerStandardPercent
}

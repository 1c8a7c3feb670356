package dto

import (
	"time"

	domainpricing "rentgear/internal/domain/pricing"
	"rentgear/internal/domain/shared/money"
)

// BookingData mirrors the booking form's snapshot of the requested window.
type BookingData struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	UnitType  string    `json:"unit_type" binding:"required"`
}

// EstimateQuoteRequest is the wire form of a quote request.
type EstimateQuoteRequest struct {
	ListingID           string      `json:"listing_id" binding:"required"`
	IsOwnListing        bool        `json:"is_own_listing"`
	IsFirstTimeCustomer bool        `json:"is_first_time_customer"`
	BookingData         BookingData `json:"booking_data" binding:"required"`
}

type MoneyDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// LineItemDTO is one serialized quote row. Optional numeric fields stay
// null rather than zero so the pricing mode remains unambiguous on the wire.
type LineItemDTO struct {
	Code       string    `json:"code"`
	UnitPrice  MoneyDTO  `json:"unit_price"`
	LineTotal  *MoneyDTO `json:"line_total,omitempty"`
	Quantity   *int64    `json:"quantity,omitempty"`
	Percentage *float64  `json:"percentage,omitempty"`
	Seats      *int64    `json:"seats,omitempty"`
	Units      *int64    `json:"units,omitempty"`
	IncludeFor []string  `json:"include_for"`
}

// QuoteResponse carries the itemized breakdown plus per-party totals.
type QuoteResponse struct {
	LineItems     []LineItemDTO `json:"line_items"`
	CustomerTotal MoneyDTO      `json:"customer_total"`
	ProviderTotal MoneyDTO      `json:"provider_total"`
}

func mapMoney(m money.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount, Currency: m.Currency}
}

// ToMoney converts the wire form back to the domain value.
func (m MoneyDTO) ToMoney() money.Money {
	return money.Money{Amount: m.Amount, Currency: m.Currency}
}

// MapLineItem serializes one quote row.
func MapLineItem(li domainpricing.LineItem) LineItemDTO {
	out := LineItemDTO{
		Code:       li.Code,
		UnitPrice:  mapMoney(li.UnitPrice),
		Quantity:   li.Quantity,
		Percentage: li.Percentage,
		Seats:      li.Seats,
		Units:      li.Units,
	}
	if li.HasTotal() {
		total := mapMoney(li.LineTotal)
		out.LineTotal = &total
	}
	for _, p := range li.IncludeFor {
		out.IncludeFor = append(out.IncludeFor, string(p))
	}
	return out
}

// ToLineItem deserializes one externally-provided quote row.
func (d LineItemDTO) ToLineItem() domainpricing.LineItem {
	li := domainpricing.LineItem{
		Code:       d.Code,
		UnitPrice:  d.UnitPrice.ToMoney(),
		Quantity:   d.Quantity,
		Percentage: d.Percentage,
		Seats:      d.Seats,
		Units:      d.Units,
	}
	if d.LineTotal != nil {
		li.LineTotal = d.LineTotal.ToMoney()
	}
	for _, p := range d.IncludeFor {
		li.IncludeFor = append(li.IncludeFor, domainpricing.Party(p))
	}
	return li
}

// MapQuote serializes a normalized quote with its party totals.
func MapQuote(q domainpricing.Quote) (QuoteResponse, error) {
	resp := QuoteResponse{LineItems: make([]LineItemDTO, 0, len(q))}
	for _, li := range q {
		resp.LineItems = append(resp.LineItems, MapLineItem(li))
	}
	customer, err := q.TotalFor(domainpricing.PartyCustomer)
	if err != nil {
		return QuoteResponse{}, err
	}
	provider, err := q.TotalFor(domainpricing.PartyProvider)
	if err != nil {
		return QuoteResponse{}, err
	}
	resp.CustomerTotal = mapMoney(customer)
	resp.ProviderTotal = mapMoney(provider)
	return resp, nil
}

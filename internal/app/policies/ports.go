package policies

import (
	"context"

	domainbooking "rentgear/internal/domain/booking"
	domainlistings "rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
)

// ListingSource loads listings for quoting and window resolution.
type ListingSource interface {
	ByID(ctx context.Context, id domainlistings.ListingID) (*domainlistings.Listing, error)
}

// QuoteSource fetches authoritative line items from the marketplace API.
// Items it returns may already carry totals, which are never recomputed.
type QuoteSource interface {
	LineItems(ctx context.Context, listing *domainlistings.Listing, w domainbooking.Window, firstTimeCustomer bool) ([]domainpricing.LineItem, error)
}

// QuoteEvents publishes quote activity for downstream pricing analytics.
// Implementations must tolerate being absent; quoting never fails because
// an event could not be published.
type QuoteEvents interface {
	QuoteComputed(ctx context.Context, evt QuoteComputedEvent) error
}

// QuoteComputedEvent is the payload emitted after each successful estimate.
type QuoteComputedEvent struct {
	QuoteID           string `json:"quote_id"`
	ListingID         string `json:"listing_id"`
	UnitType          string `json:"unit_type"`
	Quantity          int64  `json:"quantity"`
	CurrencyCode      string `json:"currency"`
	CustomerTotal     int64  `json:"customer_total_cents"`
	ProviderTotal     int64  `json:"provider_total_cents"`
	FirstTimeCustomer bool   `json:"first_time_customer"`
	Source            string `json:"source"`
	OccurredAtMillis  int64  `json:"occurred_at_ms"`
}

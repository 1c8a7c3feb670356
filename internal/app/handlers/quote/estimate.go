package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rentgear/internal/app/dto"
	"rentgear/internal/app/policies"
	"rentgear/internal/app/queries"
	domainbooking "rentgear/internal/domain/booking"
	domainlistings "rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
)

const estimateKey = "quotes.estimate"

var ErrListingClosed = errors.New("quote: listing is closed for booking")

// EstimateQuery asks for an itemized breakdown of a rental window.
type EstimateQuery struct {
	ListingID         string
	IsOwnListing      bool
	FirstTimeCustomer bool
	StartDate         time.Time
	EndDate           time.Time
	UnitType          string
}

func (q EstimateQuery) Key() string { return estimateKey }

// EstimateHandler computes quotes locally through the assembler, or relays
// the marketplace API's authoritative line items when a remote source is
// configured. Either way the result goes through normalization so every row
// carries a total.
type EstimateHandler struct {
	Listings  policies.ListingSource
	Assembler domainpricing.Assembler
	Remote    policies.QuoteSource
	Events    policies.QuoteEvents
	Logger    *slog.Logger
}

func (h *EstimateHandler) Handle(ctx context.Context, q EstimateQuery) (dto.QuoteResponse, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(q.ListingID))
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	if !listing.Bookable() && !q.IsOwnListing {
		return dto.QuoteResponse{}, ErrListingClosed
	}

	unit, err := domainbooking.ParseUnitType(q.UnitType)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	w := domainbooking.Window{StartDate: q.StartDate, EndDate: q.EndDate, Unit: unit}

	var items []domainpricing.LineItem
	source := "local"
	if h.Remote != nil {
		source = "marketplace"
		items, err = h.Remote.LineItems(ctx, listing, w, q.FirstTimeCustomer)
		if err != nil {
			return dto.QuoteResponse{}, fmt.Errorf("quote: marketplace line items: %w", err)
		}
	} else {
		var quote domainpricing.Quote
		quote, err = h.Assembler.BuildQuote(listing.Price, w, q.FirstTimeCustomer)
		if err != nil {
			return dto.QuoteResponse{}, err
		}
		items = quote
	}

	normalized, err := domainpricing.NormalizeLineItems(items)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	resp, err := dto.MapQuote(normalized)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	h.publishComputed(ctx, q, w, source, resp)
	return resp, nil
}

// publishComputed emits the analytics event. Failures are logged and
// swallowed: the caller already has a correct quote.
func (h *EstimateHandler) publishComputed(ctx context.Context, q EstimateQuery, w domainbooking.Window, source string, resp dto.QuoteResponse) {
	if h.Events == nil {
		return
	}
	qty, err := domainpricing.QuantityFromDates(w.StartDate, w.EndDate, w.Unit)
	if err != nil {
		qty = 0
	}
	evt := policies.QuoteComputedEvent{
		QuoteID:           uuid.NewString(),
		ListingID:         q.ListingID,
		UnitType:          string(w.Unit),
		Quantity:          qty,
		CurrencyCode:      resp.CustomerTotal.Currency,
		CustomerTotal:     resp.CustomerTotal.Amount,
		ProviderTotal:     resp.ProviderTotal.Amount,
		FirstTimeCustomer: q.FirstTimeCustomer,
		Source:            source,
		OccurredAtMillis:  time.Now().UTC().UnixMilli(),
	}
	if err := h.Events.QuoteComputed(ctx, evt); err != nil && h.Logger != nil {
		h.Logger.Warn("quote event publish failed", "listing_id", q.ListingID, "error", err)
	}
}

var _ queries.Handler[EstimateQuery, dto.QuoteResponse] = (*EstimateHandler)(nil)

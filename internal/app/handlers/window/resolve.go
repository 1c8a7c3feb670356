package window

import (
	"context"
	"time"

	"rentgear/internal/app/dto"
	"rentgear/internal/app/policies"
	"rentgear/internal/app/queries"
	domainbooking "rentgear/internal/domain/booking"
	domainlistings "rentgear/internal/domain/listings"
)

const resolveKey = "window.resolve"

// ResolveQuery computes the legal start/end hour candidates and drop-off
// bounds for an in-progress hourly selection against a listing's usage cap.
type ResolveQuery struct {
	ListingID string
	Selection domainbooking.Selection
	Now       time.Time
}

func (q ResolveQuery) Key() string { return resolveKey }

type ResolveHandler struct {
	Listings policies.ListingSource
}

func (h *ResolveHandler) Handle(ctx context.Context, q ResolveQuery) (dto.ResolveWindowResponse, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(q.ListingID))
	if err != nil {
		return dto.ResolveWindowResponse{}, err
	}

	now := q.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	sel := q.Selection
	maxUsage := listing.MaxUsageHours

	resp := dto.ResolveWindowResponse{
		State:           string(sel.State()),
		StartHours:      sel.StartHourOptions(now),
		EndHours:        sel.EndHourOptions(maxUsage),
		CanRequestQuote: sel.State() == domainbooking.StateFullWindow,
	}
	if min, ok := sel.MinDropOff(); ok {
		resp.MinDropOff = dto.MapDayHour(min)
	}
	if max, ok := sel.MaxDropOff(maxUsage); ok {
		resp.MaxDropOff = dto.MapDayHour(max)
	}

	// an end date was chosen that is unreachable, or no drop-off hour on
	// it is legal
	if !sel.EndDate.IsZero() {
		if !sel.EndDateAllowed(sel.EndDate, maxUsage) || len(resp.EndHours) == 0 {
			return dto.ResolveWindowResponse{}, domainbooking.ErrNoLegalWindow
		}
	}
	return resp, nil
}

var _ queries.Handler[ResolveQuery, dto.ResolveWindowResponse] = (*ResolveHandler)(nil)

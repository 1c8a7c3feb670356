package plan

import (
	"context"
	"errors"

	"rentgear/internal/app/dto"
	"rentgear/internal/app/policies"
	"rentgear/internal/app/queries"
	domainfreeplan "rentgear/internal/domain/freeplan"
	domainlistings "rentgear/internal/domain/listings"
)

const (
	getFreePlanKey   = "plan.get"
	templateHoursKey = "plan.template-hours"
)

var ErrEntryIndex = errors.New("plan: entry index out of range")

// GetFreePlanQuery asks for the display run of a listing's free hours.
type GetFreePlanQuery struct {
	ListingID string
}

func (q GetFreePlanQuery) Key() string { return getFreePlanKey }

type GetFreePlanHandler struct {
	Listings policies.ListingSource
}

func (h *GetFreePlanHandler) Handle(ctx context.Context, q GetFreePlanQuery) (dto.FreePlanResponse, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(q.ListingID))
	if err != nil {
		return dto.FreePlanResponse{}, err
	}
	hours, err := domainfreeplan.Normalize(listing.FreePlan)
	if err != nil {
		return dto.FreePlanResponse{}, err
	}
	return dto.FreePlanResponse{ListingID: q.ListingID, Hours: hours}, nil
}

// TemplateHoursQuery resolves which hours remain selectable for the
// template entry being edited, given the other entries' spans.
type TemplateHoursQuery struct {
	Entries []domainfreeplan.Entry
	Index   int
}

func (q TemplateHoursQuery) Key() string { return templateHoursKey }

type TemplateHoursHandler struct{}

func (h *TemplateHoursHandler) Handle(ctx context.Context, q TemplateHoursQuery) (dto.TemplateHoursResponse, error) {
	if q.Index < 0 || q.Index >= len(q.Entries) {
		return dto.TemplateHoursResponse{}, ErrEntryIndex
	}
	starts := domainfreeplan.AvailableStartHours(
		domainfreeplan.UnreservedStartHours(q.Entries, q.Index), q.Entries, q.Index)
	ends := domainfreeplan.AvailableEndHours(
		domainfreeplan.UnreservedEndHours(q.Entries, q.Index), q.Entries, q.Index)
	return dto.TemplateHoursResponse{StartHours: starts, EndHours: ends}, nil
}

var (
	_ queries.Handler[GetFreePlanQuery, dto.FreePlanResponse]        = (*GetFreePlanHandler)(nil)
	_ queries.Handler[TemplateHoursQuery, dto.TemplateHoursResponse] = (*TemplateHoursHandler)(nil)
)

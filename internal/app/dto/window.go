package dto

import (
	"time"

	domainbooking "rentgear/internal/domain/booking"
	"rentgear/internal/domain/shared/hourgrid"
)

// ResolveWindowRequest carries the current interactive selection. Hour
// fields are labels as the form renders them; absent means not chosen yet.
type ResolveWindowRequest struct {
	StartDate *time.Time `json:"start_date"`
	StartHour *string    `json:"start_hour"`
	EndDate   *time.Time `json:"end_date"`
	EndHour   *string    `json:"end_hour"`
}

type DayHourDTO struct {
	Date time.Time `json:"date"`
	Hour int       `json:"hour"`
}

// ResolveWindowResponse lists what the user may pick next, plus the legal
// drop-off bounds once a pick-up time exists.
type ResolveWindowResponse struct {
	State           string      `json:"state"`
	StartHours      []string    `json:"start_hours"`
	EndHours        []string    `json:"end_hours"`
	MinDropOff      *DayHourDTO `json:"min_drop_off,omitempty"`
	MaxDropOff      *DayHourDTO `json:"max_drop_off,omitempty"`
	CanRequestQuote bool        `json:"can_request_quote"`
}

func MapDayHour(d hourgrid.DayHour) *DayHourDTO {
	return &DayHourDTO{Date: d.Date, Hour: d.Hour}
}

// FreePlanResponse is the display run of free hours for a listing.
type FreePlanResponse struct {
	ListingID string   `json:"listing_id"`
	Hours     []string `json:"hours"`
}

// TemplateHoursRequest asks which hours remain selectable for the template
// entry being edited.
type TemplateHoursRequest struct {
	Entries []TemplateEntryDTO `json:"entries" binding:"required"`
	Index   int                `json:"index"`
}

type TemplateEntryDTO struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TemplateHoursResponse lists legal start and end hours for the entry.
type TemplateHoursResponse struct {
	StartHours []string `json:"start_hours"`
	EndHours   []string `json:"end_hours"`
}

// SelectionFromRequest folds the request fields through the selection state
// machine in interaction order, so out-of-order junk (an end hour without a
// start) is dropped the same way the form would drop it.
func SelectionFromRequest(req ResolveWindowRequest) (domainbooking.Selection, error) {
	sel := domainbooking.NewSelection()
	if req.StartDate != nil {
		sel = domainbooking.Apply(sel, domainbooking.SelectStartDate{Date: *req.StartDate})
	}
	if req.StartHour != nil {
		h, err := hourgrid.ParseHour(*req.StartHour)
		if err != nil {
			return domainbooking.Selection{}, err
		}
		sel = domainbooking.Apply(sel, domainbooking.SelectStartHour{Hour: h})
	}
	if req.EndDate != nil {
		sel = domainbooking.Apply(sel, domainbooking.SelectEndDate{Date: *req.EndDate})
	}
	if req.EndHour != nil {
		h, err := hourgrid.ParseHour(*req.EndHour)
		if err != nil {
			return domainbooking.Selection{}, err
		}
		sel = domainbooking.Apply(sel, domainbooking.SelectEndHour{Hour: h})
	}
	return sel, nil
}

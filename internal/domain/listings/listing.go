package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentgear/internal/domain/booking"
	"rentgear/internal/domain/freeplan"
	"rentgear/internal/domain/shared/money"
)

var (
	ErrNotFound      = errors.New("listings: listing not found")
	ErrTitleRequired = errors.New("listings: title is required")
	ErrNegativePrice = errors.New("listings: unit price must be non-negative")
	ErrUsageHours    = errors.New("listings: max usage hours must be at least 1")
)

type ListingID string
type HostID string

type ListingState string

const (
	ListingDraft  ListingState = "DRAFT"
	ListingActive ListingState = "ACTIVE"
	ListingClosed ListingState = "CLOSED"
)

// DefaultMaxUsageHours applies when a listing does not cap a single
// continuous booking.
const DefaultMaxUsageHours = 24

// Listing is the slice of an equipment listing the quoting and
// time-window subsystems read. Publishing and editing flows live elsewhere.
type Listing struct {
	ID            ListingID
	Host          HostID
	Title         string
	Description   string
	State         ListingState
	Price         money.Money
	Unit          booking.UnitType
	MaxUsageHours int
	FreePlan      []freeplan.Entry
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// ListingRepository loads listings for quoting.
type ListingRepository interface {
	ByID(ctx context.Context, id ListingID) (*Listing, error)
	Save(ctx context.Context, listing *Listing) error
}

type CreateListingParams struct {
	ID            ListingID
	Host          HostID
	Title         string
	Description   string
	Price         money.Money
	Unit          booking.UnitType
	MaxUsageHours int
	FreePlan      []freeplan.Entry
	Now           time.Time
}

// NewListing builds a bookable listing, applying the usage-cap default.
func NewListing(params CreateListingParams) (*Listing, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}
	if params.Price.Amount < 0 {
		return nil, ErrNegativePrice
	}
	maxUsage := params.MaxUsageHours
	if maxUsage == 0 {
		maxUsage = DefaultMaxUsageHours
	}
	if maxUsage < 1 {
		return nil, ErrUsageHours
	}
	unit := params.Unit
	if unit == "" {
		unit = booking.UnitHour
	}
	now := params.Now.UTC()
	return &Listing{
		ID:            params.ID,
		Host:          params.Host,
		Title:         params.Title,
		Description:   params.Description,
		State:         ListingActive,
		Price:         params.Price,
		Unit:          unit,
		MaxUsageHours: maxUsage,
		FreePlan:      append([]freeplan.Entry(nil), params.FreePlan...),
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}, nil
}

// Bookable reports whether quoting is allowed against this listing.
func (l *Listing) Bookable() bool {
	return l.State == ListingActive
}

package window

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "rentgear/internal/domain/booking"
	domainlistings "rentgear/internal/domain/listings"
	"rentgear/internal/domain/shared/money"
)

type listingSourceStub struct {
	listing *domainlistings.Listing
	err     error
}

func (s listingSourceStub) ByID(ctx context.Context, id domainlistings.ListingID) (*domainlistings.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listing, nil
}

func cappedListing(t *testing.T, maxUsage int) *domainlistings.Listing {
	t.Helper()
	l, err := domainlistings.NewListing(domainlistings.CreateListingParams{
		ID:            "lst-1",
		Host:          "host-1",
		Title:         "Wood chipper",
		Price:         money.Must(1500, "USD"),
		MaxUsageHours: maxUsage,
		Now:           time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return l
}

var (
	mar10 = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mar11 = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	now   = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

func TestResolveEmptySelection(t *testing.T) {
	h := &ResolveHandler{Listings: listingSourceStub{listing: cappedListing(t, 24)}}

	resp, err := h.Handle(context.Background(), ResolveQuery{
		ListingID: "lst-1",
		Selection: domainbooking.NewSelection(),
		Now:       now,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StateNoStart), resp.State)
	assert.Empty(t, resp.StartHours)
	assert.Empty(t, resp.EndHours)
	assert.Nil(t, resp.MinDropOff)
	assert.False(t, resp.CanRequestQuote)
}

func TestResolveDropOffBounds(t *testing.T) {
	h := &ResolveHandler{Listings: listingSourceStub{listing: cappedListing(t, 24)}}

	sel := domainbooking.NewSelection()
	sel = domainbooking.Apply(sel, domainbooking.SelectStartDate{Date: mar10})
	sel = domainbooking.Apply(sel, domainbooking.SelectStartHour{Hour: 10})

	resp, err := h.Handle(context.Background(), ResolveQuery{ListingID: "lst-1", Selection: sel, Now: now})
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StateHasStartAndHour), resp.State)

	require.NotNil(t, resp.MinDropOff)
	assert.True(t, resp.MinDropOff.Date.Equal(mar10))
	assert.Equal(t, 11, resp.MinDropOff.Hour)

	require.NotNil(t, resp.MaxDropOff)
	assert.True(t, resp.MaxDropOff.Date.Equal(mar11))
	assert.Equal(t, 10, resp.MaxDropOff.Hour)
}

func TestResolveFullWindow(t *testing.T) {
	h := &ResolveHandler{Listings: listingSourceStub{listing: cappedListing(t, 24)}}

	sel := domainbooking.NewSelection()
	sel = domainbooking.Apply(sel, domainbooking.SelectStartDate{Date: mar10})
	sel = domainbooking.Apply(sel, domainbooking.SelectStartHour{Hour: 10})
	sel = domainbooking.Apply(sel, domainbooking.SelectEndDate{Date: mar11})
	sel = domainbooking.Apply(sel, domainbooking.SelectEndHour{Hour: 9})

	resp, err := h.Handle(context.Background(), ResolveQuery{ListingID: "lst-1", Selection: sel, Now: now})
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StateFullWindow), resp.State)
	assert.True(t, resp.CanRequestQuote)
	require.NotEmpty(t, resp.EndHours)
	assert.Equal(t, "0 AM", resp.EndHours[0])
	assert.Equal(t, "10 AM", resp.EndHours[len(resp.EndHours)-1])
}

func TestResolveNoLegalWindow(t *testing.T) {
	// a 1 hour cap on a 23:00 start ends at hour 24 of the same day, so
	// the next calendar day is not a reachable drop-off date
	h := &ResolveHandler{Listings: listingSourceStub{listing: cappedListing(t, 1)}}

	sel := domainbooking.NewSelection()
	sel = domainbooking.Apply(sel, domainbooking.SelectStartDate{Date: mar10})
	sel = domainbooking.Apply(sel, domainbooking.SelectStartHour{Hour: 23})
	sel = domainbooking.Apply(sel, domainbooking.SelectEndDate{Date: mar11})

	_, err := h.Handle(context.Background(), ResolveQuery{ListingID: "lst-1", Selection: sel, Now: now})
	assert.ErrorIs(t, err, domainbooking.ErrNoLegalWindow)
}

func TestResolveListingError(t *testing.T) {
	h := &ResolveHandler{Listings: listingSourceStub{err: domainlistings.ErrNotFound}}
	_, err := h.Handle(context.Background(), ResolveQuery{ListingID: "missing"})
	assert.ErrorIs(t, err, domainlistings.ErrNotFound)
}

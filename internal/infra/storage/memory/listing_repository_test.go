package memory

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

func TestByIDMissing(t *testing.T) {
	repo := NewListingRepository()
	_, err := repo.ByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domainlistings.ErrNotFound)
}

func TestSaveThenLoad(t *testing.T) {
	repo := NewListingRepository()
	listing, err := domainlistings.NewListing(domainlistings.CreateListingParams{
		ID:    "lst-1",
		Host:  "host-1",
		Title: "Angle grinder",
		Price: money.Money{Amount: 1500, Currency: "USD"},
		Unit:  domainbooking.UnitHour,
		Now:   time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), listing))

	got, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, listing.Title, got.Title)

	// mutations of the returned copy must not leak into the store
	got.Title = "changed"
	again, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, "Angle grinder", again.Title)
}

package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	planapp "rentgear/internal/app/handlers/plan"
	quoteapp "rentgear/internal/app/handlers/quote"
	domainbooking "rentgear/internal/domain/booking"
	domainfreeplan "rentgear/internal/domain/freeplan"
	domainlistings "rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
	"rentgear/internal/domain/shared/hourgrid"
	"rentgear/internal/domain/shared/money"
)

// writeError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 with the message withheld from the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainlistings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, quoteapp.ErrListingClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrNoLegalWindow),
		errors.Is(err, domainpricing.ErrMissingPrice),
		errors.Is(err, domainpricing.ErrUnsupportedCurrency),
		errors.Is(err, domainpricing.ErrQuoteTooLarge),
		errors.Is(err, domainpricing.ErrAmbiguousPricing),
		errors.Is(err, money.ErrCurrencyMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrInvalidWindow),
		errors.Is(err, domainbooking.ErrHoursRequired),
		errors.Is(err, domainbooking.ErrUnknownUnit),
		errors.Is(err, hourgrid.ErrInvalidHourLabel),
		errors.Is(err, domainfreeplan.ErrBadEntry),
		errors.Is(err, planapp.ErrEntryIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

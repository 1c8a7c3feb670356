package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rentgear/internal/app/dto"
	quoteapp "rentgear/internal/app/handlers/quote"
	"rentgear/internal/app/queries"
)

// QuoteHandler wires quote estimation to HTTP.
type QuoteHandler struct {
	Queries queries.Bus
}

func (h QuoteHandler) Estimate(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "quote handler unavailable"})
		return
	}
	var req dto.EstimateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := quoteapp.EstimateQuery{
		ListingID:         req.ListingID,
		IsOwnListing:      req.IsOwnListing,
		FirstTimeCustomer: req.IsFirstTimeCustomer,
		StartDate:         req.BookingData.StartDate,
		EndDate:           req.BookingData.EndDate,
		UnitType:          req.BookingData.UnitType,
	}
	result, err := queries.Ask[quoteapp.EstimateQuery, dto.QuoteResponse](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ QuoteHTTP = QuoteHandler{}

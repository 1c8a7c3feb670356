package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"rentgear/internal/app/dto"
	windowapp "rentgear/internal/app/handlers/window"
	"rentgear/internal/app/queries"
)

// WindowHandler wires booking-window resolution to HTTP.
type WindowHandler struct {
	Queries queries.Bus

	// Now is swappable for tests; defaults to the wall clock.
	Now func() time.Time
}

func (h WindowHandler) Resolve(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "window handler unavailable"})
		return
	}
	listingID := c.Param("id")
	if listingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listing id is required"})
		return
	}
	var req dto.ResolveWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sel, err := dto.SelectionFromRequest(req)
	if err != nil {
		writeError(c, err)
		return
	}
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now()
	}
	query := windowapp.ResolveQuery{ListingID: listingID, Selection: sel, Now: now}
	result, err := queries.Ask[windowapp.ResolveQuery, dto.ResolveWindowResponse](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ WindowHTTP = WindowHandler{}

package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rentgear/internal/app/dto"
	planapp "rentgear/internal/app/handlers/plan"
	"rentgear/internal/app/queries"
	domainfreeplan "rentgear/internal/domain/freeplan"
)

// PlanHandler wires free-plan queries to HTTP.
type PlanHandler struct {
	Queries queries.Bus
}

func (h PlanHandler) FreePlan(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "plan handler unavailable"})
		return
	}
	listingID := c.Param("id")
	if listingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listing id is required"})
		return
	}
	query := planapp.GetFreePlanQuery{ListingID: listingID}
	result, err := queries.Ask[planapp.GetFreePlanQuery, dto.FreePlanResponse](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PlanHandler) TemplateHours(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "plan handler unavailable"})
		return
	}
	var req dto.TemplateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries := make([]domainfreeplan.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, domainfreeplan.Entry{StartTime: e.StartTime, EndTime: e.EndTime})
	}
	query := planapp.TemplateHoursQuery{Entries: entries, Index: req.Index}
	result, err := queries.Ask[planapp.TemplateHoursQuery, dto.TemplateHoursResponse](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ PlanHTTP = PlanHandler{}

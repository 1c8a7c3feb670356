package ginserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentgear/internal/app/dto"
	planapp "rentgear/internal/app/handlers/plan"
	quoteapp "rentgear/internal/app/handlers/quote"
	windowapp "rentgear/internal/app/handlers/window"
	"rentgear/internal/app/queries"
	domainbooking "rentgear/internal/domain/booking"
	domainfreeplan "rentgear/internal/domain/freeplan"
	domainlistings "rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
	"rentgear/internal/domain/shared/money"
	"rentgear/internal/infra/config"
	"rentgear/internal/infra/obs"
	"rentgear/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	repo := memory.NewListingRepository()
	listing, err := domainlistings.NewListing(domainlistings.CreateListingParams{
		ID:            "lst-1",
		Host:          "host-1",
		Title:         "Sony FX3",
		Price:         money.Money{Amount: 1000, Currency: "USD"},
		Unit:          domainbooking.UnitHour,
		MaxUsageHours: 12,
		FreePlan: []domainfreeplan.Entry{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "13:00", EndTime: "17:00"},
		},
		Now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), listing))

	assembler, err := domainpricing.NewAssembler("USD", domainpricing.DefaultCommissions())
	require.NoError(t, err)

	bus := queries.NewInMemoryBus()
	queries.RegisterHandler(bus, quoteapp.EstimateQuery{}.Key(), &quoteapp.EstimateHandler{
		Listings:  repo,
		Assembler: assembler,
	})
	queries.RegisterHandler(bus, windowapp.ResolveQuery{}.Key(), &windowapp.ResolveHandler{Listings: repo})
	queries.RegisterHandler(bus, planapp.GetFreePlanQuery{}.Key(), &planapp.GetFreePlanHandler{Listings: repo})
	queries.RegisterHandler(bus, planapp.TemplateHoursQuery{}.Key(), &planapp.TemplateHoursHandler{})

	cfg := config.Config{Env: "test", HTTPAddr: ":0"}
	server := NewServer(cfg, obs.Middleware{}, obs.HealthHandlers{}, Handlers{
		Quote:  QuoteHandler{Queries: bus},
		Window: WindowHandler{Queries: bus, Now: func() time.Time { return time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC) }},
		Plan:   PlanHandler{Queries: bus},
	})
	return server.Handler
}

func TestEstimateEndpoint(t *testing.T) {
	handler := newTestServer(t)

	body, err := json.Marshal(dto.EstimateQuoteRequest{
		ListingID:           "lst-1",
		IsFirstTimeCustomer: true,
		BookingData: dto.BookingData{
			StartDate: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC),
			UnitType:  "hour",
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/estimate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.LineItems, 3)
	assert.Equal(t, int64(4600), resp.CustomerTotal.Amount)
	assert.Equal(t, int64(3000), resp.ProviderTotal.Amount)
}

func TestEstimateUnknownListing(t *testing.T) {
	handler := newTestServer(t)

	body, err := json.Marshal(dto.EstimateQuoteRequest{
		ListingID: "missing",
		BookingData: dto.BookingData{
			StartDate: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC),
			UnitType:  "hour",
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/estimate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingWindowEndpoint(t *testing.T) {
	handler := newTestServer(t)

	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	hour := "09:00"
	body, err := json.Marshal(dto.ResolveWindowRequest{StartDate: &start, StartHour: &hour})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/lst-1/booking-window", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.ResolveWindowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(domainbooking.StateHasStartAndHour), resp.State)
	require.NotNil(t, resp.MinDropOff)
	assert.Equal(t, 10, resp.MinDropOff.Hour)
	assert.False(t, resp.CanRequestQuote)
	assert.NotEmpty(t, resp.StartHours)
	assert.Empty(t, resp.EndHours)
}

func TestFreePlanEndpoint(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/lst-1/free-plan", nil)
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.FreePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// contiguous entries fold into one run with the join hour deduplicated
	assert.Equal(t, []string{
		"9 AM", "10 AM", "11 AM", "12 AM",
		"13 PM", "14 PM", "15 PM", "16 PM", "17 PM",
	}, resp.Hours)
}

func TestTemplateHoursEndpoint(t *testing.T) {
	handler := newTestServer(t)

	body, err := json.Marshal(dto.TemplateHoursRequest{
		Entries: []dto.TemplateEntryDTO{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "", EndTime: ""},
		},
		Index: 1,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/free-plan/template-hours", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.TemplateHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.StartHours, "09:00")
	assert.NotContains(t, resp.StartHours, "12:00")
	assert.Contains(t, resp.StartHours, "13:00")
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

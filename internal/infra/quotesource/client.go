package quotesource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rentgear/internal/app/dto"
	"rentgear/internal/app/policies"
	domainbooking "rentgear/internal/domain/booking"
	domainlistings "rentgear/internal/domain/listings"
	domainpricing "rentgear/internal/domain/pricing"
)

// Client fetches authoritative line items from the marketplace API. The
// marketplace owns percentage commissions for its own transactions, so the
// totals it returns pass through untouched.
type Client struct {
	Client  *http.Client
	BaseURL string
	Logger  *slog.Logger
}

type lineItemsRequest struct {
	ListingID         string       `json:"listing_id"`
	OrderData         orderData    `json:"order_data"`
	FirstTimeCustomer bool         `json:"first_time_customer"`
	UnitPrice         dto.MoneyDTO `json:"unit_price"`
}

type orderData struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	UnitType  string    `json:"unit_type"`
}

type lineItemsResponse struct {
	LineItems []dto.LineItemDTO `json:"line_items"`
}

func (c *Client) LineItems(ctx context.Context, listing *domainlistings.Listing, w domainbooking.Window, firstTimeCustomer bool) ([]domainpricing.LineItem, error) {
	if c == nil || c.Client == nil {
		return nil, errors.New("quotesource: http client not configured")
	}
	if c.BaseURL == "" {
		return nil, errors.New("quotesource: marketplace endpoint not configured")
	}

	payload := lineItemsRequest{
		ListingID: string(listing.ID),
		OrderData: orderData{
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			UnitType:  string(w.Unit),
		},
		FirstTimeCustomer: firstTimeCustomer,
		UnitPrice:         dto.MoneyDTO{Amount: listing.Price.Amount, Currency: listing.Price.Currency},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := c.BaseURL + "/transaction-line-items"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(request)
	if err != nil {
		c.logError("marketplace line items request failed", listing.ID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("marketplace returned status %d: %s", resp.StatusCode, string(snippet))
		c.logError("marketplace line items returned error", listing.ID, err)
		return nil, err
	}

	var decoded lineItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logError("marketplace line items decode failed", listing.ID, err)
		return nil, err
	}

	items := make([]domainpricing.LineItem, 0, len(decoded.LineItems))
	for _, d := range decoded.LineItems {
		items = append(items, d.ToLineItem())
	}
	return items, nil
}

func (c *Client) logError(msg string, listingID domainlistings.ListingID, err error) {
	if c.Logger == nil {
		return
	}
	c.Logger.Error(msg, "listing_id", listingID, "error", err)
}

var _ policies.QuoteSource = (*Client)(nil)

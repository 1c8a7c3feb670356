package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"rentgear/internal/app/policies"
	"rentgear/internal/infra/obs"
)

// QuoteEventPublisher emits quote analytics onto a prefixed topic.
type QuoteEventPublisher struct {
	Producer    *Producer
	TopicPrefix string
}

func (p QuoteEventPublisher) QuoteComputed(ctx context.Context, evt policies.QuoteComputedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("kafka: encode quote event: %w", err)
	}
	headers := map[string]string{"content-type": "application/json"}
	if rid := obs.RequestIDFromContext(ctx); rid != "" {
		headers["request-id"] = rid
	}
	topic := p.TopicPrefix + "pricing.quote-computed"
	return p.Producer.Publish(ctx, topic, evt.ListingID, payload, headers)
}

var _ policies.QuoteEvents = QuoteEventPublisher{}

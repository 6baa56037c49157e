package service

import (
	"context"
	"time"
)

// MarketplaceEvent describes a state change in the marketplace, published for
// downstream consumers (dashboards, audit trails). Publishing is best-effort:
// a failed publish is logged and never fails the originating operation.
type MarketplaceEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        string    `json:"type"`                 // Event type, e.g. "order.placed"
	OccurredAt  time.Time `json:"occurred_at"`
	OrderID     string    `json:"order_id,omitempty"`
	PaymentID   string    `json:"payment_id,omitempty"`
	ComplaintID string    `json:"complaint_id,omitempty"`
	VendorName  string    `json:"vendor_name,omitempty"`
	Amount      string    `json:"amount,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing marketplace events to a
// message queue.
type EventPublisher interface {
	// PublishMarketplaceEvent publishes an event for async processing.
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

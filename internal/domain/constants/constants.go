// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names selectable via config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Marketplace event types.
const (
	EventOrderPlaced         = "order.placed"
	EventOrderTransitioned   = "order.transitioned"
	EventPaymentTransitioned = "payment.transitioned"
	EventComplaintResolved   = "complaint.resolved"
)

// Package constants holds identifiers shared across layers.
package constants

// Environments that relax production-only checks.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event metadata.
const (
	EventTypeOrderPlaced = "order.placed"

	AttrEventType   = "event_type"
	AttrOrderID     = "order_id"
	AttrOrderNumber = "order_number"
	AttrRequestID   = "request_id"
)

// HeaderXSessionID carries the storefront session identifier.
const HeaderXSessionID = "X-Session-Id"

package ports

import "context"

// Event types emitted by the stockroom service.
const (
	EventStockUpdated      = "stock.updated"
	EventPurchaseConfirmed = "purchase.confirmed"
	EventBasketDrained     = "basket.drained"
)

// EventPublisher fans stock and basket changes out to downstream consumers.
// Publishing is best effort: ledger writes are never rolled back when a
// publish fails.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}

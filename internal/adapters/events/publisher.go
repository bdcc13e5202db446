package events

import (
	"context"
	"log/slog"
)

// LoggingPublisher is the event sink used when no broker is configured:
// stock and basket events land in the service log instead of kafka, so a
// single-node deployment still leaves an audit trail.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.InfoContext(ctx, "event emitted",
		"event_type", eventType,
		"partition_key", partitionKey,
		"payload_bytes", len(payload),
	)
	return nil
}

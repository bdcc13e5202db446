package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRevocationStore remembers logged-out session ids until their
// tokens would have expired anyway.
type SessionRevocationStore interface {
	MarkRevoked(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

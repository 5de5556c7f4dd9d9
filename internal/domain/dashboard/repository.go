package dashboard

import (
	"context"
	"time"
)

// Repository aggregates dashboard counters for an account.
type Repository interface {
	GetStats(ctx context.Context, userID string, today time.Time) (*Stats, error)
}

package dashboard

import "context"

// Service exposes the dashboard snapshot.
type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

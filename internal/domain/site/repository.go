package site

import "context"

// Repository defines data access for sites, scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, s *Site) error
	GetByID(ctx context.Context, id, userID string) (*Site, error)
	List(ctx context.Context, userID string) ([]Site, error)
	Update(ctx context.Context, s *Site) error
	Delete(ctx context.Context, id, userID string) error
}

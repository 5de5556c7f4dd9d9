package payment

import (
	"context"
	"time"
)

// Repository defines data access for payments, scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, pay *Payment) error
	GetByID(ctx context.Context, id, userID string) (*Payment, error)
	List(ctx context.Context, userID string, filter PaymentFilter) ([]Payment, error)
	ListByEmployee(ctx context.Context, employeeID, userID string) ([]Payment, error)
	ListByDate(ctx context.Context, userID string, date time.Time) ([]Payment, error)
	Update(ctx context.Context, pay *Payment) error
	Delete(ctx context.Context, id, userID string) error
	DeleteByEmployee(ctx context.Context, employeeID, userID string) error
}

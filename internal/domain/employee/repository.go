package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for employees. Every method is scoped to
// the owning user so one account can never read another account's rows.
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id, userID string) (*Employee, error)
	List(ctx context.Context, userID string, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id, userID string) error

	InsertRateHistory(ctx context.Context, employeeID, userID string, entries []RateHistoryEntry) error
	ListRateHistory(ctx context.Context, employeeID, userID string) ([]RateHistoryEntry, error)
	UpdateRoleRate(ctx context.Context, employeeID, userID, role string, rate decimal.Decimal) error
	ReplaceSecondaryRoles(ctx context.Context, employeeID, userID string, roles []SecondaryRole) error
}

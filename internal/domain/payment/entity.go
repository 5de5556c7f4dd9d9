package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a sum paid out to an employee on a given date.
type Payment struct {
	ID         string
	UserID     string
	EmployeeID string
	Amount     decimal.Decimal
	Date       time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated by list queries via joins.
	EmployeeName string
}

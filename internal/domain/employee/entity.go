package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a worker tracked by an account owner. The primary
// role carries its own daily rate; additional trades live in SecondaryRoles.
type Employee struct {
	ID             string
	UserID         string
	Name           string
	Role           string
	DailyRate      decimal.Decimal
	RateHistory    []RateHistoryEntry
	SecondaryRoles []SecondaryRole
	JoinedDate     time.Time
	Active         bool
	Phone          *string
	NIC            *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SecondaryRole is an additional trade an employee can work under, with
// its own rate and increment history.
type SecondaryRole struct {
	Name      string
	DailyRate decimal.Decimal
	History   []RateHistoryEntry
}

// RateHistoryEntry records a daily rate that became effective on a given
// date for one of the employee's roles.
type RateHistoryEntry struct {
	ID            string
	RoleName      string
	Rate          decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
}

// RateForRole returns the current daily rate for the named role and
// whether the employee holds that role at all.
func (e *Employee) RateForRole(role string) (decimal.Decimal, bool) {
	if role == "" || role == e.Role {
		return e.DailyRate, true
	}
	for _, sr := range e.SecondaryRoles {
		if sr.Name == role {
			return sr.DailyRate, true
		}
	}
	return decimal.Zero, false
}

// HistoryForRole returns the increment history for the named role.
func (e *Employee) HistoryForRole(role string) []RateHistoryEntry {
	if role == "" || role == e.Role {
		return e.RateHistory
	}
	for _, sr := range e.SecondaryRoles {
		if sr.Name == role {
			return sr.History
		}
	}
	return nil
}

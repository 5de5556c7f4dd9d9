package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type SecondaryRoleInput struct {
	Name      string          `json:"name"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

type CreateEmployeeRequest struct {
	Name           string               `json:"name"`
	Role           string               `json:"role"`
	DailyRate      decimal.Decimal      `json:"daily_rate"`
	JoinedDate     string               `json:"joined_date"`
	Phone          *string              `json:"phone,omitempty"`
	NIC            *string              `json:"nic,omitempty"`
	SecondaryRoles []SecondaryRoleInput `json:"secondary_roles,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if !validator.IsValidMoney(r.DailyRate) {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be zero or positive"})
	}
	if validator.IsEmpty(r.JoinedDate) {
		errs = append(errs, validator.ValidationError{Field: "joined_date", Message: "joined date is required"})
	} else if !validator.IsValidDate(r.JoinedDate) {
		errs = append(errs, validator.ValidationError{Field: "joined_date", Message: "joined date must be in YYYY-MM-DD format"})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number format"})
	}
	if r.NIC != nil && !validator.IsEmpty(*r.NIC) && !validator.IsValidNIC(*r.NIC) {
		errs = append(errs, validator.ValidationError{Field: "nic", Message: "invalid NIC format"})
	}

	seen := make(map[string]bool)
	for _, sr := range r.SecondaryRoles {
		if validator.IsEmpty(sr.Name) {
			errs = append(errs, validator.ValidationError{Field: "secondary_roles", Message: "secondary role name is required"})
			continue
		}
		if sr.Name == r.Role || seen[sr.Name] {
			errs = append(errs, validator.ValidationError{Field: "secondary_roles", Message: "secondary role names must be unique"})
		}
		seen[sr.Name] = true
		if !validator.IsValidMoney(sr.DailyRate) {
			errs = append(errs, validator.ValidationError{Field: "secondary_roles", Message: "secondary role daily rate must be zero or positive"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name           *string              `json:"name,omitempty"`
	Role           *string              `json:"role,omitempty"`
	DailyRate      *decimal.Decimal     `json:"daily_rate,omitempty"`
	JoinedDate     *string              `json:"joined_date,omitempty"`
	Active         *bool                `json:"active,omitempty"`
	Phone          *string              `json:"phone,omitempty"`
	NIC            *string              `json:"nic,omitempty"`
	SecondaryRoles []SecondaryRoleInput `json:"secondary_roles,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role cannot be empty"})
	}
	if r.DailyRate != nil && !validator.IsValidMoney(*r.DailyRate) {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be zero or positive"})
	}
	if r.JoinedDate != nil && !validator.IsValidDate(*r.JoinedDate) {
		errs = append(errs, validator.ValidationError{Field: "joined_date", Message: "joined date must be in YYYY-MM-DD format"})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number format"})
	}
	if r.NIC != nil && !validator.IsEmpty(*r.NIC) && !validator.IsValidNIC(*r.NIC) {
		errs = append(errs, validator.ValidationError{Field: "nic", Message: "invalid NIC format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RateIncrementRequest records a new daily rate for one of the employee's
// roles, optionally effective on a future date.
type RateIncrementRequest struct {
	Role          string          `json:"role"`
	NewRate       decimal.Decimal `json:"new_rate"`
	EffectiveDate string          `json:"effective_date"`
}

func (r *RateIncrementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if !r.NewRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "new_rate", Message: "new rate must be positive"})
	}
	if validator.IsEmpty(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective date is required"})
	} else if !validator.IsValidDate(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SecondaryRoleResponse struct {
	Name      string                `json:"name"`
	DailyRate decimal.Decimal       `json:"daily_rate"`
	History   []RateHistoryResponse `json:"history"`
}

type RateHistoryResponse struct {
	ID            string          `json:"id"`
	Role          string          `json:"role"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

type EmployeeResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Role           string                  `json:"role"`
	DailyRate      decimal.Decimal         `json:"daily_rate"`
	RateHistory    []RateHistoryResponse   `json:"rate_history"`
	SecondaryRoles []SecondaryRoleResponse `json:"secondary_roles"`
	JoinedDate     string                  `json:"joined_date"`
	Active         bool                    `json:"active"`
	Phone          *string                 `json:"phone,omitempty"`
	NIC            *string                 `json:"nic,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// EmployeeFilter narrows List results.
type EmployeeFilter struct {
	Search     string
	ActiveOnly bool
}

func ToRateHistoryResponse(e RateHistoryEntry) RateHistoryResponse {
	return RateHistoryResponse{
		ID:            e.ID,
		Role:          e.RoleName,
		Rate:          e.Rate,
		EffectiveDate: e.EffectiveDate.Format("2006-01-02"),
		CreatedAt:     e.CreatedAt,
	}
}

func ToEmployeeResponse(e *Employee) EmployeeResponse {
	history := make([]RateHistoryResponse, 0, len(e.RateHistory))
	for _, h := range e.RateHistory {
		history = append(history, ToRateHistoryResponse(h))
	}

	secondary := make([]SecondaryRoleResponse, 0, len(e.SecondaryRoles))
	for _, sr := range e.SecondaryRoles {
		srHistory := make([]RateHistoryResponse, 0, len(sr.History))
		for _, h := range sr.History {
			srHistory = append(srHistory, ToRateHistoryResponse(h))
		}
		secondary = append(secondary, SecondaryRoleResponse{
			Name:      sr.Name,
			DailyRate: sr.DailyRate,
			History:   srHistory,
		})
	}

	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Role:           e.Role,
		DailyRate:      e.DailyRate,
		RateHistory:    history,
		SecondaryRoles: secondary,
		JoinedDate:     e.JoinedDate.Format("2006-01-02"),
		Active:         e.Active,
		Phone:          e.Phone,
		NIC:            e.NIC,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

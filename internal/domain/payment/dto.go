package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type CreatePaymentRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      *string         `json:"notes,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *string          `json:"date,omitempty"`
	Notes  *string          `json:"notes,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	if r.Date != nil && !validator.IsValidDate(*r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PaymentFilter narrows List results. Zero values mean no filtering.
type PaymentFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (f *PaymentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" && !validator.IsValidDate(f.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if f.EndDate != "" && !validator.IsValidDate(f.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyTotalResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Amount:       p.Amount,
		Date:         p.Date.Format("2006-01-02"),
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

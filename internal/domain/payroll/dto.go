package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type SummaryResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalEarned  decimal.Decimal `json:"total_earned"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
	TotalHours   float64         `json:"total_hours"`
	DaysPresent  int             `json:"days_present"`
	DaysHalf     int             `json:"days_half"`
}

type SalaryOverviewResponse struct {
	Employees   []SummaryResponse `json:"employees"`
	TotalEarned decimal.Decimal   `json:"total_earned"`
	TotalPaid   decimal.Decimal   `json:"total_paid"`
	TotalOwed   decimal.Decimal   `json:"total_owed"`
}

// LaborCostReportRequest selects the inclusive date range and optional
// site for a report.
type LaborCostReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	SiteID    string `json:"site_id,omitempty"`
}

func (r *LaborCostReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LaborCostRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Hours        float64         `json:"hours"`
	Cost         decimal.Decimal `json:"cost"`
}

type LaborCostReportResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	SiteID    string          `json:"site_id,omitempty"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Rows      []LaborCostRow  `json:"rows"`
}

package payroll

import "context"

// Service exposes salary aggregation over attendance and payments.
type Service interface {
	GetEmployeeSummary(ctx context.Context, employeeID string) (*SummaryResponse, error)
	GetSalaryOverview(ctx context.Context) (*SalaryOverviewResponse, error)
}

// ReportService builds labor cost reports over a date range.
type ReportService interface {
	BuildLaborCostReport(ctx context.Context, req *LaborCostReportRequest) (*LaborCostReportResponse, error)
}

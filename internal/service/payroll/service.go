package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	paymentRepo    payment.Repository
}

func NewPayrollService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	paymentRepo payment.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}

// GetEmployeeSummary aggregates one employee's all-time earnings, payments
// and hours.
func (s *PayrollServiceImpl) GetEmployeeSummary(ctx context.Context, employeeID string) (*payroll.SummaryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, userID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByEmployee(ctx, employeeID, userID)
	if err != nil {
		return nil, err
	}

	summary := payroll.SummarizeEmployee(*emp, records, payments)
	return toSummaryResponse(emp, summary), nil
}

// GetSalaryOverview builds the summary for every employee of the account
// plus account-wide totals.
func (s *PayrollServiceImpl) GetSalaryOverview(ctx context.Context) (*payroll.SalaryOverviewResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, userID, employee.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	overview := &payroll.SalaryOverviewResponse{
		Employees:   make([]payroll.SummaryResponse, 0, len(employees)),
		TotalEarned: decimal.Zero,
		TotalPaid:   decimal.Zero,
		TotalOwed:   decimal.Zero,
	}

	for i := range employees {
		emp := &employees[i]

		records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, userID)
		if err != nil {
			return nil, err
		}
		payments, err := s.paymentRepo.ListByEmployee(ctx, emp.ID, userID)
		if err != nil {
			return nil, err
		}

		summary := payroll.SummarizeEmployee(*emp, records, payments)
		overview.Employees = append(overview.Employees, *toSummaryResponse(emp, summary))
		overview.TotalEarned = overview.TotalEarned.Add(summary.TotalEarned)
		overview.TotalPaid = overview.TotalPaid.Add(summary.TotalPaid)
		overview.TotalOwed = overview.TotalOwed.Add(summary.Balance)
	}

	return overview, nil
}

func toSummaryResponse(emp *employee.Employee, summary payroll.Summary) *payroll.SummaryResponse {
	return &payroll.SummaryResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		TotalEarned:  summary.TotalEarned,
		TotalPaid:    summary.TotalPaid,
		Balance:      summary.Balance,
		TotalHours:   summary.TotalHours,
		DaysPresent:  summary.DaysPresent,
		DaysHalf:     summary.DaysHalf,
	}
}

package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

type ReportServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
}

func NewReportService(employeeRepo employee.Repository, attendanceRepo attendance.Repository) payroll.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// BuildLaborCostReport totals labor cost over the inclusive date range,
// optionally restricted to one site. Rows are ordered by cost, highest
// first.
func (s *ReportServiceImpl) BuildLaborCostReport(ctx context.Context, req *payroll.LaborCostReportRequest) (*payroll.LaborCostReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx, userID, employee.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	report := payroll.BuildReport(records, employees, start, end, req.SiteID)

	rows := make([]payroll.LaborCostRow, 0, len(report.PerEmployee))
	for id, entry := range report.PerEmployee {
		rows = append(rows, payroll.LaborCostRow{
			EmployeeID:   id,
			EmployeeName: entry.Name,
			Hours:        entry.Hours,
			Cost:         entry.Cost,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cost.Equal(rows[j].Cost) {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].Cost.GreaterThan(rows[j].Cost)
	})

	return &payroll.LaborCostReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SiteID:    req.SiteID,
		TotalCost: report.TotalCost,
		Rows:      rows,
	}, nil
}

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/domain/site"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	siteRepo       site.Repository
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	siteRepo site.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		siteRepo:       siteRepo,
	}
}

// MarkAttendance records or replaces the employee's record for the date.
// When clock times are given the status and hours are derived from them
// and any explicit status in the request is ignored.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req *attendance.MarkAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, userID); err != nil {
		return nil, err
	}
	if req.SiteID != nil && *req.SiteID != "" {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID, userID); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	att := &attendance.Attendance{
		ID:           uuid.New().String(),
		UserID:       userID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		Status:       attendance.Status(req.Status),
		Role:         req.Role,
		SiteID:       req.SiteID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		WorkingHours: req.WorkingHours,
	}

	if req.StartTime != nil && req.EndTime != nil {
		status, hours, err := payroll.DeriveStatus(*req.StartTime, *req.EndTime)
		if err != nil {
			return nil, err
		}
		att.Status = status
		if att.WorkingHours == nil {
			att.WorkingHours = &hours
		}
	}

	if err := s.attendanceRepo.Upsert(ctx, att); err != nil {
		return nil, err
	}

	saved, err := s.attendanceRepo.GetByID(ctx, att.ID, userID)
	if err != nil {
		return nil, err
	}

	resp := attendance.ToAttendanceResponse(saved)
	return &resp, nil
}

// GetAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (*attendance.AttendanceResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := attendance.ToAttendanceResponse(att)
	return &resp, nil
}

// ListAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, attendance.ToAttendanceResponse(&records[i]))
	}
	return responses, nil
}

// DeleteAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id, userID)
}

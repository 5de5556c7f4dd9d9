package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay/sitepay-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	paymentRepo    payment.Repository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	paymentRepo payment.Repository,
) employee.Service {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
	}
}

// CreateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	joined, err := time.Parse("2006-01-02", req.JoinedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid joined date: %w", err)
	}

	emp := &employee.Employee{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       req.Name,
		Role:       req.Role,
		DailyRate:  req.DailyRate,
		JoinedDate: joined,
		Active:     true,
		Phone:      req.Phone,
		NIC:        req.NIC,
	}
	for _, sr := range req.SecondaryRoles {
		emp.SecondaryRoles = append(emp.SecondaryRoles, employee.SecondaryRole{
			Name:      sr.Name,
			DailyRate: sr.DailyRate,
		})
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.employeeRepo.Create(txCtx, emp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// GetEmployee implements employee.Service.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// ListEmployees implements employee.Service.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employee.ToEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

// UpdateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.DailyRate != nil {
		emp.DailyRate = *req.DailyRate
	}
	if req.JoinedDate != nil {
		joined, err := time.Parse("2006-01-02", *req.JoinedDate)
		if err != nil {
			return nil, fmt.Errorf("invalid joined date: %w", err)
		}
		emp.JoinedDate = joined
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.NIC != nil {
		emp.NIC = req.NIC
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, emp); err != nil {
			return err
		}
		if req.SecondaryRoles != nil {
			roles := make([]employee.SecondaryRole, 0, len(req.SecondaryRoles))
			for _, sr := range req.SecondaryRoles {
				roles = append(roles, employee.SecondaryRole{Name: sr.Name, DailyRate: sr.DailyRate})
			}
			if err := s.employeeRepo.ReplaceSecondaryRoles(txCtx, emp.ID, userID, roles); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload so secondary roles and history reflect what was stored.
	emp, err = s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// DeleteEmployee removes the employee together with their attendance and
// payment rows. The whole cascade runs in one transaction so a failure
// leaves nothing half-deleted.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, id, userID); err != nil {
			return err
		}
		if err := s.paymentRepo.DeleteByEmployee(txCtx, id, userID); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id, userID)
	})
}

// RecordRateIncrement implements employee.Service.
func (s *EmployeeServiceImpl) RecordRateIncrement(ctx context.Context, id string, req *employee.RateIncrementRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	effective, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("invalid effective date: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, entries, err := payroll.ApplyIncrement(*emp, req.Role, req.NewRate, effective, time.Now())
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ID = uuid.New().String()
	}

	role := req.Role
	if role == "" {
		role = emp.Role
	}
	newCurrent, _ := updated.RateForRole(role)
	oldCurrent, _ := emp.RateForRole(role)
	promoted := !newCurrent.Equal(oldCurrent)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.InsertRateHistory(txCtx, id, userID, entries); err != nil {
			return err
		}
		if promoted {
			return s.employeeRepo.UpdateRoleRate(txCtx, id, userID, role, newCurrent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	emp, err = s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// GetRateHistory implements employee.Service.
func (s *EmployeeServiceImpl) GetRateHistory(ctx context.Context, id string) ([]employee.RateHistoryResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, id, userID); err != nil {
		return nil, err
	}

	entries, err := s.employeeRepo.ListRateHistory(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.RateHistoryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, employee.ToRateHistoryResponse(e))
	}
	return responses, nil
}

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type PaymentServiceImpl struct {
	paymentRepo  payment.Repository
	employeeRepo employee.Repository
}

func NewPaymentService(paymentRepo payment.Repository, employeeRepo employee.Repository) payment.Service {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

// CreatePayment implements payment.Service.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req *payment.CreatePaymentRequest) (*payment.PaymentResponse, error) {
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

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	pay := &payment.Payment{
		ID:         uuid.New().String(),
		UserID:     userID,
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Date:       date,
		Notes:      req.Notes,
	}

	if err := s.paymentRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	resp := payment.ToPaymentResponse(pay)
	return &resp, nil
}

// GetPayment implements payment.Service.
func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (*payment.PaymentResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pay, err := s.paymentRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := payment.ToPaymentResponse(pay)
	return &resp, nil
}

// ListPayments implements payment.Service.
func (s *PaymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) ([]payment.PaymentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, payment.ToPaymentResponse(&payments[i]))
	}
	return responses, nil
}

// UpdatePayment implements payment.Service.
func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, id string, req *payment.UpdatePaymentRequest) (*payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pay, err := s.paymentRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		pay.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		pay.Date = date
	}
	if req.Notes != nil {
		pay.Notes = req.Notes
	}

	if err := s.paymentRepo.Update(ctx, pay); err != nil {
		return nil, err
	}

	resp := payment.ToPaymentResponse(pay)
	return &resp, nil
}

// DeletePayment implements payment.Service.
func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.paymentRepo.Delete(ctx, id, userID)
}

// GetDailyTotal sums all payments recorded on exactly the given date.
func (s *PaymentServiceImpl) GetDailyTotal(ctx context.Context, date string) (*payment.DailyTotalResponse, error) {
	if !validator.IsValidDate(date) {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		}
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	payments, err := s.paymentRepo.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &payment.DailyTotalResponse{
		Date:  date,
		Total: payroll.DailyPaymentTotal(payments, day),
	}, nil
}

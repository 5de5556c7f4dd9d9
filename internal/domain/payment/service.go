package payment

import "context"

// Service defines payment business operations.
type Service interface {
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*PaymentResponse, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]PaymentResponse, error)
	UpdatePayment(ctx context.Context, id string, req *UpdatePaymentRequest) (*PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error

	GetDailyTotal(ctx context.Context, date string) (*DailyTotalResponse, error)
}

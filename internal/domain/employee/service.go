package employee

import "context"

// Service defines employee business operations.
type Service interface {
	CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	RecordRateIncrement(ctx context.Context, id string, req *RateIncrementRequest) (*EmployeeResponse, error)
	GetRateHistory(ctx context.Context, id string) ([]RateHistoryResponse, error)
}

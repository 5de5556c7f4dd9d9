package attendance

import "context"

// Service defines attendance business operations.
type Service interface {
	MarkAttendance(ctx context.Context, req *MarkAttendanceRequest) (*AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (*AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}

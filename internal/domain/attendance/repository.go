package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records, scoped to the
// owning user.
type Repository interface {
	// Upsert inserts the record or replaces the existing row for the same
	// employee and date.
	Upsert(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id, userID string) (*Attendance, error)
	List(ctx context.Context, userID string, filter AttendanceFilter) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID, userID string) ([]Attendance, error)
	ListByRange(ctx context.Context, userID string, start, end time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteByEmployee(ctx context.Context, employeeID, userID string) error
}

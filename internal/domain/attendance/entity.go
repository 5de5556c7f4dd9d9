package attendance

import "time"

// Status is the attendance outcome for a single day.
type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

// Attendance is one employee's record for one calendar date. At most one
// record exists per employee per date.
type Attendance struct {
	ID           string
	UserID       string
	EmployeeID   string
	Date         time.Time
	Status       Status
	Role         *string
	SiteID       *string
	StartTime    *string
	EndTime      *string
	WorkingHours *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated by list queries via joins.
	EmployeeName string
	SiteName     *string
}

// ValidStatuses lists the accepted attendance statuses.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusHalfDay),
	string(StatusAbsent),
}

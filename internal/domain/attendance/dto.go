package attendance

import (
	"time"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest records or replaces an employee's attendance for a
// date. Either an explicit status or a start/end time pair must be given;
// when both are present the times win and the status is derived from them.
type MarkAttendanceRequest struct {
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	Status       string   `json:"status,omitempty"`
	Role         *string  `json:"role,omitempty"`
	SiteID       *string  `json:"site_id,omitempty"`
	StartTime    *string  `json:"start_time,omitempty"`
	EndTime      *string  `json:"end_time,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	hasTimes := r.StartTime != nil && r.EndTime != nil
	if r.Status == "" && !hasTimes {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status or both start_time and end_time are required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: present, half-day, absent"})
	}
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if (r.StartTime == nil) != (r.EndTime == nil) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time and end_time must be provided together"})
	}
	if r.WorkingHours != nil && !validator.IsValidHours(*r.WorkingHours) {
		errs = append(errs, validator.ValidationError{Field: "working_hours", Message: "working_hours must be zero or positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	Status       Status    `json:"status"`
	Role         *string   `json:"role,omitempty"`
	SiteID       *string   `json:"site_id,omitempty"`
	SiteName     *string   `json:"site_name,omitempty"`
	StartTime    *string   `json:"start_time,omitempty"`
	EndTime      *string   `json:"end_time,omitempty"`
	WorkingHours *float64  `json:"working_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AttendanceFilter narrows List results. Zero values mean no filtering.
type AttendanceFilter struct {
	EmployeeID string
	SiteID     string
	Date       string
	StartDate  string
	EndDate    string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" && !validator.IsValidDate(f.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if f.StartDate != "" && !validator.IsValidDate(f.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if f.EndDate != "" && !validator.IsValidDate(f.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToAttendanceResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       a.Status,
		Role:         a.Role,
		SiteID:       a.SiteID,
		SiteName:     a.SiteName,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		WorkingHours: a.WorkingHours,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

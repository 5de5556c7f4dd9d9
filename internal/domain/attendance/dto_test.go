package attendance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestMarkAttendanceRequestValidate(t *testing.T) {
	t.Run("status only is valid", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
			Status:     "present",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("clock times without a status are valid", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
			StartTime:  strPtr("08:00"),
			EndTime:    strPtr("18:00"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("neither status nor times is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
		}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "status")
	})

	t.Run("only one clock time is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
			Status:     "present",
			StartTime:  strPtr("08:00"),
		}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
			Status:     "late",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "01-07-2024",
			Status:     "present",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("malformed clock time is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       "2024-07-01",
			StartTime:  strPtr("8am"),
			EndTime:    strPtr("18:00"),
		}
		assert.Error(t, req.Validate())
	})

	t.Run("negative working hours are rejected", func(t *testing.T) {
		hours := -2.0
		req := MarkAttendanceRequest{
			EmployeeID:   "emp-1",
			Date:         "2024-07-01",
			Status:       "present",
			WorkingHours: &hours,
		}
		assert.Error(t, req.Validate())
	})

	t.Run("missing employee id is rejected", func(t *testing.T) {
		req := MarkAttendanceRequest{
			Date:   "2024-07-01",
			Status: "present",
		}
		assert.Error(t, req.Validate())
	})
}

func TestAttendanceFilterValidate(t *testing.T) {
	assert.NoError(t, (&AttendanceFilter{}).Validate())
	assert.NoError(t, (&AttendanceFilter{StartDate: "2024-07-01", EndDate: "2024-07-31"}).Validate())
	assert.Error(t, (&AttendanceFilter{Date: "July 1"}).Validate())
	assert.Error(t, (&AttendanceFilter{StartDate: "2024-7-1"}).Validate())
}

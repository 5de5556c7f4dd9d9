package response

import (
	"errors"
	"net/http"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/domain/site"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, jwt.ErrMissingUserID):
		Unauthorized(w, "Missing or invalid credentials")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRoleNotFound):
		BadRequest(w, "Employee does not hold the requested role", nil)
	case errors.Is(err, employee.ErrDuplicateRole):
		BadRequest(w, "Secondary role with the same name already exists", nil)
	case errors.Is(err, payroll.ErrUnknownRole):
		BadRequest(w, "Employee does not hold the requested role", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Email atau password salah")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNIPExists):
		Conflict(w, "NIP already registered")
	case errors.Is(err, employee.ErrInvalidCSV):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveNotApproved):
		BadRequest(w, "Leave request is not approved", nil)
	case errors.Is(err, leave.ErrInvalidTargetStatus):
		BadRequest(w, err.Error(), nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrOvertimeRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrInvalidTimeRange):
		BadRequest(w, err.Error(), nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrEmptyRecipient), errors.Is(err, notification.ErrEmptyMessage):
		BadRequest(w, err.Error(), nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

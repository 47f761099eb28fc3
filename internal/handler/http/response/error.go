package response

import (
	"errors"
	"net/http"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/department"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmployeeInactive):
		Forbidden(w, "Employee account is deactivated")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee with this email or employee code already exists")
	case errors.Is(err, employee.ErrNotAllowed):
		Forbidden(w, "Not allowed to access this resource")

	// Master data errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		NotFound(w, "No check-in record found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSettingsNotFound):
		NotFound(w, "Attendance settings not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "A leave request already exists for this period")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Only pending leave requests can be modified")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the requesting employee may modify this leave request")
	case errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, "Not allowed to approve or reject this leave request")
	case errors.Is(err, leave.ErrPastStartDate):
		BadRequest(w, "Leave start date cannot be in the past", nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "Leave end date cannot be before start date", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already exists for this month")
	case errors.Is(err, payroll.ErrPayrollAlreadySent):
		Conflict(w, "Payroll record already sent, cannot modify")
	case errors.Is(err, payroll.ErrInvalidMonthFormat):
		BadRequest(w, "Month must be in format YYYY-MM", nil)
	case errors.Is(err, payroll.ErrNotAllowed):
		Forbidden(w, "Not allowed to access this payroll record")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

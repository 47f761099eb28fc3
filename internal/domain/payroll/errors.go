package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this month")
	ErrPayrollAlreadySent   = errors.New("payroll record already sent, cannot modify")
	ErrInvalidMonthFormat   = errors.New("month must be in format YYYY-MM")
	ErrNotAllowed           = errors.New("not allowed to access this payroll record")
)

package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee with this email or employee code already exists")
	ErrNotAllowed       = errors.New("not allowed to access this employee record")
)

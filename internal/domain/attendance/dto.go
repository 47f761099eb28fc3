package attendance

import (
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type CheckOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type RecordQuery struct {
	StartDate    string
	EndDate      string
	EmployeeID   string
	DepartmentID string
}

func (q *RecordQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.StartDate != "" {
		if _, ok := validator.IsValidDate(q.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if q.EndDate != "" {
		if _, ok := validator.IsValidDate(q.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	EmployeeCode   *string  `json:"employee_code,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Date           string   `json:"date"`
	CheckInTime    *string  `json:"check_in_time,omitempty"`
	CheckOutTime   *string  `json:"check_out_time,omitempty"`
	Status         Status   `json:"status"`
	WorkHours      *float64 `json:"work_hours,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// ToRecordResponse maps an entity to its API shape.
func ToRecordResponse(rec AttendanceRecord) RecordResponse {
	return RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		EmployeeCode:   rec.EmployeeCode,
		DepartmentName: rec.DepartmentName,
		Date:           rec.Date.Format(time.DateOnly),
		CheckInTime:    timePtrToString(rec.CheckInTime),
		CheckOutTime:   timePtrToString(rec.CheckOutTime),
		Status:         rec.Status,
		WorkHours:      rec.WorkHours,
		Notes:          rec.Notes,
	}
}

type UpsertSettingsRequest struct {
	CheckInTime       string  `json:"check_in_time"`
	CheckOutTime      string  `json:"check_out_time"`
	GracePeriodMins   int     `json:"grace_period_mins"`
	StandardWorkHours float64 `json:"standard_work_hours"`
}

func (r *UpsertSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := time.Parse("15:04", r.CheckInTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}

	if _, err := time.Parse("15:04", r.CheckOutTime); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	if r.GracePeriodMins < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_mins",
			Message: "grace_period_mins must not be negative",
		})
	}

	if r.StandardWorkHours <= 0 || r.StandardWorkHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_work_hours",
			Message: "standard_work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	ID                string  `json:"id"`
	DepartmentID      string  `json:"department_id"`
	CheckInTime       string  `json:"check_in_time"`
	CheckOutTime      string  `json:"check_out_time"`
	GracePeriodMins   int     `json:"grace_period_mins"`
	StandardWorkHours float64 `json:"standard_work_hours"`
	IsActive          bool    `json:"is_active"`
}

// ToSettingsResponse maps an entity to its API shape.
func ToSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		ID:                s.ID,
		DepartmentID:      s.DepartmentID,
		CheckInTime:       s.CheckInTime.Format("15:04"),
		CheckOutTime:      s.CheckOutTime.Format("15:04"),
		GracePeriodMins:   s.GracePeriodMins,
		StandardWorkHours: s.StandardWorkHours,
		IsActive:          s.IsActive,
	}
}

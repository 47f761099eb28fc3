package leave

import (
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType Type   `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.LeaveType.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of CASUAL, SICK, ANNUAL, MATERNITY, PATERNITY, OTHER",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	Status        Status  `json:"status"`
	ApprovalNotes *string `json:"approval_notes,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestQuery struct {
	Status       string
	LeaveType    string
	StartDate    string
	EndDate      string
	EmployeeID   string
	DepartmentID string
}

type RequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	LeaveType      Type    `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalDays      int     `json:"total_days"`
	Reason         string  `json:"reason"`
	Status         Status  `json:"status"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	ApproverName   *string `json:"approver_name,omitempty"`
	ApprovalDate   *string `json:"approval_date,omitempty"`
	ApprovalNotes  *string `json:"approval_notes,omitempty"`
	AppliedAt      string  `json:"applied_at"`
}

// ToRequestResponse maps an entity to its API shape.
func ToRequestResponse(req LeaveRequest) RequestResponse {
	var approvalDate *string
	if req.ApprovalDate != nil {
		formatted := req.ApprovalDate.Format(time.RFC3339)
		approvalDate = &formatted
	}

	return RequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		EmployeeCode:   req.EmployeeCode,
		DepartmentName: req.DepartmentName,
		LeaveType:      req.LeaveType,
		StartDate:      req.StartDate.Format(time.DateOnly),
		EndDate:        req.EndDate.Format(time.DateOnly),
		TotalDays:      req.TotalDays,
		Reason:         req.Reason,
		Status:         req.Status,
		ApprovedBy:     req.ApprovedBy,
		ApproverName:   req.ApproverName,
		ApprovalDate:   approvalDate,
		ApprovalNotes:  req.ApprovalNotes,
		AppliedAt:      req.AppliedAt.Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	EmployeeID      string `json:"employee_id"`
	Year            int    `json:"year"`
	CasualLeaves    int    `json:"casual_leaves"`
	SickLeaves      int    `json:"sick_leaves"`
	AnnualLeaves    int    `json:"annual_leaves"`
	UsedCasual      int    `json:"used_casual"`
	UsedSick        int    `json:"used_sick"`
	UsedAnnual      int    `json:"used_annual"`
	CasualRemaining int    `json:"casual_remaining"`
	SickRemaining   int    `json:"sick_remaining"`
	AnnualRemaining int    `json:"annual_remaining"`
}

// ToBalanceResponse maps a balance row to its API shape with remaining
// counts per tracked type.
func ToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:      b.EmployeeID,
		Year:            b.Year,
		CasualLeaves:    b.CasualLeaves,
		SickLeaves:      b.SickLeaves,
		AnnualLeaves:    b.AnnualLeaves,
		UsedCasual:      b.UsedCasual,
		UsedSick:        b.UsedSick,
		UsedAnnual:      b.UsedAnnual,
		CasualRemaining: b.Available(TypeCasual),
		SickRemaining:   b.Available(TypeSick),
		AnnualRemaining: b.Available(TypeAnnual),
	}
}

package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month        string   `json:"month"`
	EmployeeIDs  []string `json:"employee_ids,omitempty"`
	DepartmentID *string  `json:"department_id,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GenerateResult carries partial-success semantics: the batch never aborts
// on a single employee's failure.
type GenerateResult struct {
	Success int               `json:"success"`
	Errors  []string          `json:"errors"`
	Records []PayrollResponse `json:"records"`
}

type PayrollQuery struct {
	Month        string
	Year         string
	EmployeeID   string
	DepartmentID string
	Status       string
}

type UpdatePayrollRequest struct {
	OtherEarnings   *decimal.Decimal `json:"other_earnings,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
	ArrearDays      *int             `json:"arrear_days,omitempty"`
}

type BulkActionRequest struct {
	PayrollIDs []string `json:"payroll_ids"`
	Action     Status   `json:"action"`
}

func (r *BulkActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PayrollIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "payroll_ids",
			Message: "payroll_ids must not be empty",
		})
	}

	if !r.Action.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of DRAFT, GENERATED, SENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkActionResult struct {
	Updated int64 `json:"updated"`
	Total   int   `json:"total"`
}

type PayrollResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         *string         `json:"employee_name,omitempty"`
	EmployeeCode         *string         `json:"employee_code,omitempty"`
	DepartmentName       *string         `json:"department_name,omitempty"`
	Month                string          `json:"month"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	HRA                  decimal.Decimal `json:"hra"`
	FuelAllowance        decimal.Decimal `json:"fuel_allowance"`
	PerformanceIncentive decimal.Decimal `json:"performance_incentive"`
	OtherEarnings        decimal.Decimal `json:"other_earnings"`
	PFDeduction          decimal.Decimal `json:"pf_deduction"`
	PTDeduction          decimal.Decimal `json:"pt_deduction"`
	OtherDeductions      decimal.Decimal `json:"other_deductions"`
	TotalEarnings        decimal.Decimal `json:"total_earnings"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
	TotalDays            int             `json:"total_days"`
	DaysPresent          int             `json:"days_present"`
	ArrearDays           int             `json:"arrear_days"`
	LWPDays              int             `json:"lwp_days"`
	Status               Status          `json:"status"`
	GeneratedAt          string          `json:"generated_at"`
}

// ToResponse maps an entity to its API shape.
func ToResponse(rec PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:                   rec.ID,
		EmployeeID:           rec.EmployeeID,
		EmployeeName:         rec.EmployeeName,
		EmployeeCode:         rec.EmployeeCode,
		DepartmentName:       rec.DepartmentName,
		Month:                rec.Month,
		BasicSalary:          rec.BasicSalary,
		HRA:                  rec.HRA,
		FuelAllowance:        rec.FuelAllowance,
		PerformanceIncentive: rec.PerformanceIncentive,
		OtherEarnings:        rec.OtherEarnings,
		PFDeduction:          rec.PFDeduction,
		PTDeduction:          rec.PTDeduction,
		OtherDeductions:      rec.OtherDeductions,
		TotalEarnings:        rec.TotalEarnings,
		TotalDeductions:      rec.TotalDeductions,
		NetPay:               rec.NetPay,
		TotalDays:            rec.TotalDays,
		DaysPresent:          rec.DaysPresent,
		ArrearDays:           rec.ArrearDays,
		LWPDays:              rec.LWPDays,
		Status:               rec.Status,
		GeneratedAt:          rec.GeneratedAt.Format(time.RFC3339),
	}
}

type PayslipResponse struct {
	PayslipHTML string          `json:"payslip_html"`
	Payroll     PayrollResponse `json:"payroll"`
}

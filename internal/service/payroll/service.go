package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	attendancesvc "github.com/jhex-consulting/hrms-backend-go/internal/service/attendance"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	salaryDetailRepo payroll.SalaryDetailRepository
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	salaryDetailRepo payroll.SalaryDetailRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepo,
		salaryDetailRepo:  salaryDetailRepo,
		attendanceRepo:    attendanceRepo,
		employeeRepo:      employeeRepo,
	}
}

// monthBounds returns the first and last day of a "YYYY-MM" month.
func monthBounds(month string) (time.Time, time.Time, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidMonthFormat
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// mayAccess reports whether the principal may see a payroll record.
func (s *PayrollServiceImpl) mayAccess(ctx context.Context, p auth.Principal, rec payroll.PayrollRecord) bool {
	access := p.Access()
	switch access.Kind {
	case role.ScopeAll:
		return true
	case role.ScopeDepartment:
		return rec.DepartmentID != nil && *rec.DepartmentID == access.DepartmentID
	case role.ScopeTeam:
		if rec.EmployeeID == p.EmployeeID {
			return true
		}
		managed, err := s.employeeRepo.IsManagedBy(ctx, rec.EmployeeID, p.EmployeeID)
		return err == nil && managed
	default:
		return rec.EmployeeID == p.EmployeeID
	}
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, p auth.Principal, req payroll.GeneratePayrollRequest) (payroll.GenerateResult, error) {
	if !p.Can(role.PermissionPayrollManage) {
		return payroll.GenerateResult{}, payroll.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return payroll.GenerateResult{}, err
	}

	first, last, err := monthBounds(req.Month)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	// Batch-level precondition: any existing record for the month under
	// this filter fails the whole request before anything is written.
	exists, err := s.PayrollRepository.ExistsForMonth(ctx, req.Month, req.EmployeeIDs, req.DepartmentID)
	if err != nil {
		return payroll.GenerateResult{}, err
	}
	if exists {
		return payroll.GenerateResult{}, payroll.ErrPayrollAlreadyExists
	}

	employees, err := s.employeeRepo.ListActive(ctx, req.EmployeeIDs, req.DepartmentID)
	if err != nil {
		return payroll.GenerateResult{}, err
	}

	result := payroll.GenerateResult{
		Errors:  []string{},
		Records: []payroll.PayrollResponse{},
	}

	for _, emp := range employees {
		detail, err := s.salaryDetailRepo.GetCurrent(ctx, emp.ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", emp.FullName, err))
			continue
		}
		if detail == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("No salary details found for employee %s", emp.FullName))
			continue
		}

		records, err := s.attendanceRepo.ListForEmployeeBetween(ctx, emp.ID, first, last)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", emp.FullName, err))
			continue
		}

		totals := attendancesvc.AggregateMonth(records, first.Year(), first.Month())
		breakdown := Calculate(*detail, totals)

		created, err := s.PayrollRepository.Create(ctx, payroll.PayrollRecord{
			EmployeeID:           emp.ID,
			Month:                req.Month,
			BasicSalary:          breakdown.BasicSalary,
			HRA:                  breakdown.HRA,
			FuelAllowance:        breakdown.FuelAllowance,
			PerformanceIncentive: breakdown.PerformanceIncentive,
			OtherEarnings:        breakdown.OtherEarnings,
			PFDeduction:          breakdown.PFDeduction,
			PTDeduction:          breakdown.PTDeduction,
			OtherDeductions:      breakdown.OtherDeductions,
			TotalEarnings:        breakdown.TotalEarnings,
			TotalDeductions:      breakdown.TotalDeductions,
			NetPay:               breakdown.NetPay,
			TotalDays:            breakdown.TotalDays,
			DaysPresent:          breakdown.DaysPresent,
			ArrearDays:           breakdown.ArrearDays,
			LWPDays:              breakdown.LWPDays,
			Status:               payroll.StatusGenerated,
			GeneratedBy:          p.EmployeeID,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", emp.FullName, err))
			continue
		}

		result.Success++
		result.Records = append(result.Records, payroll.ToResponse(created))
	}

	return result, nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, p auth.Principal, q payroll.PayrollQuery) ([]payroll.PayrollResponse, error) {
	access := p.Access()

	if q.EmployeeID != "" && !access.CanFilterByEmployee() && q.EmployeeID != p.EmployeeID && access.Kind != role.ScopeTeam {
		q.EmployeeID = p.EmployeeID
	}
	if q.DepartmentID != "" && !access.CanFilterByDepartment() {
		q.DepartmentID = p.DepartmentID
	}

	records, err := s.PayrollRepository.List(ctx, q, access)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}

	return responses, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, p auth.Principal, id string) (payroll.PayrollResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if !s.mayAccess(ctx, p, rec) {
		return payroll.PayrollResponse{}, payroll.ErrNotAllowed
	}

	return payroll.ToResponse(rec), nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, p auth.Principal, id string) (payroll.PayslipResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	if !s.mayAccess(ctx, p, rec) {
		return payroll.PayslipResponse{}, payroll.ErrNotAllowed
	}

	detail, err := s.salaryDetailRepo.GetCurrent(ctx, rec.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	html, err := RenderPayslip(rec, detail)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.PayslipResponse{
		PayslipHTML: html,
		Payroll:     payroll.ToResponse(rec),
	}, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, p auth.Principal, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if !p.Can(role.PermissionPayrollManage) {
		return payroll.PayrollResponse{}, payroll.ErrNotAllowed
	}

	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if rec.Status == payroll.StatusSent {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadySent
	}

	if req.OtherEarnings != nil {
		rec.OtherEarnings = *req.OtherEarnings
	}
	if req.OtherDeductions != nil {
		rec.OtherDeductions = *req.OtherDeductions
	}
	if req.ArrearDays != nil {
		rec.ArrearDays = *req.ArrearDays
	}

	rec = Recalculate(rec)

	if err := s.PayrollRepository.Update(ctx, rec); err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}

// BulkAction implements payroll.PayrollService.
func (s *PayrollServiceImpl) BulkAction(ctx context.Context, p auth.Principal, req payroll.BulkActionRequest) (payroll.BulkActionResult, error) {
	if !p.Can(role.PermissionPayrollManage) {
		return payroll.BulkActionResult{}, payroll.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return payroll.BulkActionResult{}, err
	}

	updated, err := s.PayrollRepository.UpdateStatusBulk(ctx, req.PayrollIDs, req.Action)
	if err != nil {
		return payroll.BulkActionResult{}, err
	}

	return payroll.BulkActionResult{
		Updated: updated,
		Total:   len(req.PayrollIDs),
	}, nil
}

// MarkSent implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkSent(ctx context.Context, p auth.Principal, id string) (payroll.PayrollResponse, error) {
	if !p.Can(role.PermissionPayrollManage) {
		return payroll.PayrollResponse{}, payroll.ErrNotAllowed
	}

	if _, err := s.PayrollRepository.GetByID(ctx, id); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if err := s.PayrollRepository.MarkSent(ctx, id); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(rec), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, p auth.Principal, id string) error {
	if !p.Can(role.PermissionPayrollManage) {
		return payroll.ErrNotAllowed
	}

	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status == payroll.StatusSent {
		return payroll.ErrPayrollAlreadySent
	}

	return s.PayrollRepository.Delete(ctx, id)
}

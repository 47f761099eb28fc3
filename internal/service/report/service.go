package report

import (
	"context"
	"sort"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

// EmployeeMonthlyStats is one employee's line in the monthly attendance
// report. TotalDays counts the recorded days, not the calendar month.
type EmployeeMonthlyStats struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	EmployeeCode   string  `json:"employee_code"`
	DepartmentName string  `json:"department_name"`
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	LateDays       int     `json:"late_days"`
	EarlyOutDays   int     `json:"early_out_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
}

// ReportService builds the monthly per-employee attendance report.
type ReportService interface {
	MonthlyAttendance(ctx context.Context, p auth.Principal, month string) ([]EmployeeMonthlyStats, error)
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) ReportService {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo}
}

// MonthlyAttendance implements ReportService.
func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, p auth.Principal, month string) ([]EmployeeMonthlyStats, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	first, _ := time.Parse("2006-01", month)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListBetween(ctx, first, last, p.Access())
	if err != nil {
		return nil, err
	}

	byEmployee := map[string]*EmployeeMonthlyStats{}
	for _, rec := range records {
		stats, ok := byEmployee[rec.EmployeeID]
		if !ok {
			stats = &EmployeeMonthlyStats{EmployeeID: rec.EmployeeID}
			if rec.EmployeeName != nil {
				stats.EmployeeName = *rec.EmployeeName
			}
			if rec.EmployeeCode != nil {
				stats.EmployeeCode = *rec.EmployeeCode
			}
			if rec.DepartmentName != nil {
				stats.DepartmentName = *rec.DepartmentName
			}
			byEmployee[rec.EmployeeID] = stats
		}

		stats.TotalDays++
		switch {
		case rec.CheckInTime != nil:
			stats.PresentDays++
		default:
			stats.AbsentDays++
		}
		if rec.Status == attendance.StatusLate {
			stats.LateDays++
		}
		if rec.Status == attendance.StatusEarlyOut {
			stats.EarlyOutDays++
		}
		if rec.WorkHours != nil {
			stats.TotalWorkHours += *rec.WorkHours
		}
	}

	report := make([]EmployeeMonthlyStats, 0, len(byEmployee))
	for _, stats := range byEmployee {
		report = append(report, *stats)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].EmployeeCode < report[j].EmployeeCode
	})

	return report, nil
}

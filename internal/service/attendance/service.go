package attendance

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settingsRepo attendance.SettingsRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo attendance.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		settingsRepo:         settingsRepo,
	}
}

// today truncates a wall-clock instant to its calendar date.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, p auth.Principal, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	now := time.Now()
	date := today(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, p.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if existing != nil && existing.CheckInTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	settings, err := s.settingsRepo.GetActiveByDepartment(ctx, p.DepartmentID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.AttendanceRepository.UpsertCheckIn(ctx, attendance.AttendanceRecord{
		EmployeeID:  p.EmployeeID,
		Date:        date,
		CheckInTime: &now,
		Status:      CheckInStatus(now, settings),
		Notes:       req.Notes,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(rec), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, p auth.Principal, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	now := time.Now()
	date := today(now)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, p.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil || rec.CheckInTime == nil {
		return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
	}
	if rec.CheckOutTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	settings, err := s.settingsRepo.GetActiveByDepartment(ctx, p.DepartmentID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	workHours := WorkHours(*rec.CheckInTime, now)
	status := CheckOutStatus(rec.Status, now, workHours, settings)

	if err := s.AttendanceRepository.UpdateCheckOut(ctx, rec.ID, now, workHours, status, req.Notes); err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := s.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, p auth.Principal) (*attendance.RecordResponse, error) {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, p.EmployeeID, today(time.Now()))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.ToRecordResponse(*rec)
	return &resp, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, p auth.Principal, q attendance.RecordQuery) ([]attendance.RecordResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	access := p.Access()

	// Narrowing filters from roles without broad visibility are clamped;
	// the access condition ANDed in by the repository makes anything
	// outside their scope come back empty.
	if q.EmployeeID != "" && !access.CanFilterByEmployee() && q.EmployeeID != p.EmployeeID && access.Kind != role.ScopeTeam {
		q.EmployeeID = p.EmployeeID
	}
	if q.DepartmentID != "" && !access.CanFilterByDepartment() {
		q.DepartmentID = p.DepartmentID
	}

	records, err := s.AttendanceRepository.List(ctx, q, access)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}

	return responses, nil
}

package leave

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db postgresql.TxBeginner
	leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	db postgresql.TxBeginner,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: requestRepo,
		balanceRepo:            balanceRepo,
		employeeRepo:           employeeRepo,
	}
}

// totalDays is the inclusive day span of a leave, both endpoints counted.
func totalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// canViewRequest reports whether the principal may see a leave request.
func canViewRequest(p auth.Principal, req leave.LeaveRequest) bool {
	access := p.Access()
	switch access.Kind {
	case role.ScopeAll:
		return true
	case role.ScopeDepartment:
		return req.DepartmentID != nil && *req.DepartmentID == access.DepartmentID
	default:
		return req.EmployeeID == p.EmployeeID
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, p auth.Principal, req leave.CreateLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	if end.Before(start) {
		return leave.RequestResponse{}, leave.ErrEndBeforeStart
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(todayStart) {
		return leave.RequestResponse{}, leave.ErrPastStartDate
	}

	overlaps, err := s.LeaveRequestRepository.CheckOverlapping(ctx, p.EmployeeID, start, end)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if overlaps {
		return leave.RequestResponse{}, leave.ErrOverlappingLeave
	}

	days := totalDays(start, end)

	if req.LeaveType.IsBalanceTracked() {
		balance, err := s.balanceRepo.Ensure(ctx, p.EmployeeID, start.Year())
		if err != nil {
			return leave.RequestResponse{}, err
		}
		if balance.Available(req.LeaveType) < days {
			return leave.RequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: p.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	full, err := s.LeaveRequestRepository.GetByID(ctx, created.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(full), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, p auth.Principal, q leave.RequestQuery) ([]leave.RequestResponse, error) {
	access := p.Access()

	if q.EmployeeID != "" && !access.CanFilterByEmployee() && q.EmployeeID != p.EmployeeID && access.Kind != role.ScopeTeam {
		q.EmployeeID = p.EmployeeID
	}
	if q.DepartmentID != "" && !access.CanFilterByDepartment() {
		q.DepartmentID = p.DepartmentID
	}

	requests, err := s.LeaveRequestRepository.List(ctx, q, access)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToRequestResponse(req))
	}

	return responses, nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, p auth.Principal, id string) (leave.RequestResponse, error) {
	req, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if !s.mayAccess(ctx, p, req) {
		return leave.RequestResponse{}, leave.ErrRequestNotFound
	}

	return leave.ToRequestResponse(req), nil
}

// mayAccess extends canViewRequest with the team lead's direct reports,
// which need a repository lookup.
func (s *LeaveServiceImpl) mayAccess(ctx context.Context, p auth.Principal, req leave.LeaveRequest) bool {
	if canViewRequest(p, req) {
		return true
	}
	if p.Access().Kind != role.ScopeTeam {
		return false
	}
	managed, err := s.employeeRepo.IsManagedBy(ctx, req.EmployeeID, p.EmployeeID)
	return err == nil && managed
}

// DecideRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DecideRequest(ctx context.Context, p auth.Principal, id string, req leave.DecideLeaveRequest) (leave.RequestResponse, error) {
	if !p.Can(role.PermissionLeaveApprove) {
		return leave.RequestResponse{}, leave.ErrApprovalNotAllowed
	}
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	// Nobody approves their own leave.
	if existing.EmployeeID == p.EmployeeID {
		return leave.RequestResponse{}, leave.ErrApprovalNotAllowed
	}
	if !s.mayAccess(ctx, p, existing) {
		return leave.RequestResponse{}, leave.ErrApprovalNotAllowed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.LeaveRequestRepository.Decide(txCtx, id, req.Status, p.EmployeeID, time.Now(), req.ApprovalNotes); err != nil {
			return err
		}

		if req.Status == leave.StatusApproved && existing.LeaveType.IsBalanceTracked() {
			year := existing.StartDate.Year()
			if _, err := s.balanceRepo.Ensure(txCtx, existing.EmployeeID, year); err != nil {
				return err
			}
			return s.balanceRepo.IncrementUsed(txCtx, existing.EmployeeID, year, existing.LeaveType, existing.TotalDays)
		}

		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	decided, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(decided), nil
}

// UpdateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateRequest(ctx context.Context, p auth.Principal, id string, req leave.UpdateLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if existing.EmployeeID != p.EmployeeID {
		return leave.RequestResponse{}, leave.ErrNotRequestOwner
	}
	if existing.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	start := existing.StartDate
	end := existing.EndDate
	if req.StartDate != nil {
		start, _ = time.Parse(time.DateOnly, *req.StartDate)
	}
	if req.EndDate != nil {
		end, _ = time.Parse(time.DateOnly, *req.EndDate)
	}

	// Changing either date re-runs the creation-time date rules against the
	// effective range.
	if req.StartDate != nil || req.EndDate != nil {
		if end.Before(start) {
			return leave.RequestResponse{}, leave.ErrEndBeforeStart
		}

		now := time.Now()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(todayStart) {
			return leave.RequestResponse{}, leave.ErrPastStartDate
		}
	}

	if err := s.LeaveRequestRepository.UpdateDates(ctx, id, start, end, totalDays(start, end), req.Reason); err != nil {
		return leave.RequestResponse{}, err
	}

	updated, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(updated), nil
}

// DeleteRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteRequest(ctx context.Context, p auth.Principal, id string) error {
	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.EmployeeID != p.EmployeeID {
		return leave.ErrNotRequestOwner
	}
	if existing.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}

	return s.LeaveRequestRepository.Delete(ctx, id)
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, p auth.Principal, employeeID string, year int) (leave.BalanceResponse, error) {
	if employeeID == "" {
		employeeID = p.EmployeeID
	}
	if year == 0 {
		year = time.Now().Year()
	}

	if employeeID != p.EmployeeID {
		access := p.Access()
		allowed := access.CanFilterByEmployee()
		if !allowed && access.Kind == role.ScopeTeam {
			managed, err := s.employeeRepo.IsManagedBy(ctx, employeeID, p.EmployeeID)
			if err != nil {
				return leave.BalanceResponse{}, err
			}
			allowed = managed
		}
		if !allowed {
			return leave.BalanceResponse{}, leave.ErrBalanceNotFound
		}
	}

	balance, err := s.balanceRepo.Ensure(ctx, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.ToBalanceResponse(balance), nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestSelectColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
	l.total_days, l.reason, l.status, l.approved_by, l.approval_date,
	l.approval_notes, l.applied_at, l.updated_at,
	e.full_name, e.employee_code, e.department_id, d.name, ap.full_name
`

const leaveRequestJoins = `
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN employees ap ON ap.id = l.approved_by
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.TotalDays, &req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovalDate,
		&req.ApprovalNotes, &req.AppliedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode, &req.DepartmentID, &req.DepartmentName, &req.ApproverName,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			total_days, reason, status, applied_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING id, applied_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.TotalDays,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.AppliedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestSelectColumns + leaveRequestJoins + ` WHERE l.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}

	return req, nil
}

// CheckOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var overlaps bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&overlaps); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return overlaps, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, query leave.RequestQuery, access role.AccessFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}

	if query.Status != "" {
		args = append(args, query.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if query.LeaveType != "" {
		args = append(args, query.LeaveType)
		conditions = append(conditions, fmt.Sprintf("l.leave_type = $%d", len(args)))
	}
	if query.StartDate != "" {
		args = append(args, query.StartDate)
		conditions = append(conditions, fmt.Sprintf("l.end_date >= $%d::date", len(args)))
	}
	if query.EndDate != "" {
		args = append(args, query.EndDate)
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d::date", len(args)))
	}
	if query.EmployeeID != "" {
		args = append(args, query.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if query.DepartmentID != "" {
		args = append(args, query.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if cond := scopeCondition(access, "l.employee_id", "e.department_id", "e.manager_id", &args); cond != "" {
		conditions = append(conditions, cond)
	}

	sql := `SELECT ` + leaveRequestSelectColumns + leaveRequestJoins
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY l.applied_at DESC"

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateDates implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time, totalDays int, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET start_date = $2,
			end_date = $3,
			total_days = $4,
			reason = COALESCE($5, reason),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, startDate, endDate, totalDays, reason)
	if err != nil {
		return fmt.Errorf("failed to update leave request dates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// Decide implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Decide(ctx context.Context, id string, status leave.Status, approverID string, approvalDate time.Time, notes *string) error {
	q := GetQuerier(ctx, r.db)

	// Guarding on PENDING keeps the transition one-way even under
	// concurrent approvals.
	query := `
		UPDATE leave_requests
		SET status = $2,
			approved_by = $3,
			approval_date = $4,
			approval_notes = $5,
			updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, status, approverID, approvalDate, notes)
	if err != nil {
		return fmt.Errorf("failed to decide leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

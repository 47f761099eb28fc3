package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelectColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.work_hours, a.notes, a.created_at, a.updated_at,
	e.full_name, e.employee_code, d.name
`

const attendanceJoins = `
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
	JOIN departments d ON d.id = e.department_id
`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Status, &rec.WorkHours, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.DepartmentName,
	)
	return rec, err
}

// UpsertCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpsertCheckIn(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Two racing check-ins resolve on the (employee_id, date) constraint:
	// the loser only wins the row if it still has no check-in.
	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in_time, status, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		)
		ON CONFLICT ON CONSTRAINT uk_attendance_employee_date DO UPDATE
		SET check_in_time = EXCLUDED.check_in_time,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		WHERE attendance_records.check_in_time IS NULL
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.CheckInTime,
		rec.Status,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceSelectColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceSelectColumns + attendanceJoins + ` WHERE a.id = $1`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return rec, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, workHours float64, status attendance.Status, notes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $2,
			work_hours = $3,
			status = $4,
			notes = COALESCE($5, notes),
			updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOut, workHours, status, notes)
	if err != nil {
		return fmt.Errorf("failed to update check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, query attendance.RecordQuery, access role.AccessFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}

	if query.StartDate != "" {
		args = append(args, query.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d::date", len(args)))
	}
	if query.EndDate != "" {
		args = append(args, query.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d::date", len(args)))
	}
	if query.EmployeeID != "" {
		args = append(args, query.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if query.DepartmentID != "" {
		args = append(args, query.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if cond := scopeCondition(access, "a.employee_id", "e.department_id", "e.manager_id", &args); cond != "" {
		conditions = append(conditions, cond)
	}

	sql := `SELECT ` + attendanceSelectColumns + attendanceJoins
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY a.date DESC, e.employee_code"

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListForEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceSelectColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListBetween(ctx context.Context, from, to time.Time, access role.AccessFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.date BETWEEN $1 AND $2"}
	args := []interface{}{from, to}

	if cond := scopeCondition(access, "a.employee_id", "e.department_id", "e.manager_id", &args); cond != "" {
		conditions = append(conditions, cond)
	}

	query := `SELECT ` + attendanceSelectColumns + attendanceJoins +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY e.employee_code, a.date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance between dates: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

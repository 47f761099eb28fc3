package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type attendanceSettingsRepository struct {
	db *database.DB
}

func NewAttendanceSettingsRepository(db *database.DB) attendance.SettingsRepository {
	return &attendanceSettingsRepository{db: db}
}

// GetActiveByDepartment implements attendance.SettingsRepository.
func (r *attendanceSettingsRepository) GetActiveByDepartment(ctx context.Context, departmentID string) (*attendance.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, check_in_time, check_out_time,
			   grace_period_mins, standard_work_hours, is_active,
			   created_at, updated_at
		FROM attendance_settings
		WHERE department_id = $1 AND is_active = TRUE
		LIMIT 1
	`

	var s attendance.Settings
	err := q.QueryRow(ctx, query, departmentID).Scan(
		&s.ID, &s.DepartmentID, &s.CheckInTime, &s.CheckOutTime,
		&s.GracePeriodMins, &s.StandardWorkHours, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	return &s, nil
}

// Upsert implements attendance.SettingsRepository.
func (r *attendanceSettingsRepository) Upsert(ctx context.Context, s attendance.Settings) (attendance.Settings, error) {
	q := GetQuerier(ctx, r.db)

	// One active row per department, replaced in place.
	query := `
		INSERT INTO attendance_settings (
			id, department_id, check_in_time, check_out_time,
			grace_period_mins, standard_work_hours, is_active,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, TRUE, NOW(), NOW()
		)
		ON CONFLICT ON CONSTRAINT uk_attendance_settings_department DO UPDATE
		SET check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			grace_period_mins = EXCLUDED.grace_period_mins,
			standard_work_hours = EXCLUDED.standard_work_hours,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.DepartmentID,
		s.CheckInTime,
		s.CheckOutTime,
		s.GracePeriodMins,
		s.StandardWorkHours,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return attendance.Settings{}, fmt.Errorf("failed to upsert attendance settings: %w", err)
	}

	s.IsActive = true
	return s, nil
}

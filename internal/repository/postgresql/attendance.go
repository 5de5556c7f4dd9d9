package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.employee_id, a.date, a.status, a.role, a.site_id,
	a.start_time, a.end_time, a.working_hours, a.created_at, a.updated_at,
	COALESCE(e.name, '') AS employee_name,
	s.name AS site_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.EmployeeID, &att.Date, &att.Status, &att.Role, &att.SiteID,
		&att.StartTime, &att.EndTime, &att.WorkingHours, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.SiteName,
	)
	return att, err
}

// Upsert inserts the record or fully replaces the existing row for the
// same employee and date.
func (r *attendanceRepository) Upsert(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, user_id, employee_id, date, status, role, site_id,
			start_time, end_time, working_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			role = EXCLUDED.role,
			site_id = EXCLUDED.site_id,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			working_hours = EXCLUDED.working_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.UserID, att.EmployeeID, att.Date, att.Status, att.Role, att.SiteID,
		att.StartTime, att.EndTime, att.WorkingHours,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id, userID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN sites s ON s.id = a.site_id
		WHERE a.id = $1 AND a.user_id = $2
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return &att, nil
}

func (r *attendanceRepository) List(ctx context.Context, userID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.SiteID != "" {
		baseWhere += fmt.Sprintf(" AND a.site_id = $%d", argIdx)
		args = append(args, filter.SiteID)
		argIdx++
	}
	if filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, filter.Date)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN sites s ON s.id = a.site_id
		WHERE %s
		ORDER BY a.date DESC, e.name ASC
	`, attendanceColumns, baseWhere)

	return r.queryMany(ctx, q, query, args...)
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN sites s ON s.id = a.site_id
		WHERE a.employee_id = $1 AND a.user_id = $2
		ORDER BY a.date ASC
	`, attendanceColumns)

	return r.queryMany(ctx, q, query, employeeID, userID)
}

func (r *attendanceRepository) ListByRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN sites s ON s.id = a.site_id
		WHERE a.user_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date ASC
	`, attendanceColumns)

	return r.queryMany(ctx, q, query, userID, start, end)
}

func (r *attendanceRepository) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1 AND user_id = $2`, employeeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance by employee: %w", err)
	}

	return nil
}

func (r *attendanceRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

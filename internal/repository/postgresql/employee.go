package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, name, role, daily_rate, joined_date, active, phone, nic)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.Name, emp.Role, emp.DailyRate,
		emp.JoinedDate, emp.Active, emp.Phone, emp.NIC,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	for _, sr := range emp.SecondaryRoles {
		if err := r.insertSecondaryRole(ctx, emp.ID, emp.UserID, sr); err != nil {
			return err
		}
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id, userID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, role, daily_rate, joined_date, active, phone, nic, created_at, updated_at
		FROM employees
		WHERE id = $1 AND user_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&emp.ID, &emp.UserID, &emp.Name, &emp.Role, &emp.DailyRate,
		&emp.JoinedDate, &emp.Active, &emp.Phone, &emp.NIC,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if err := r.attachRolesAndHistory(ctx, []*employee.Employee{&emp}, userID); err != nil {
		return nil, err
	}

	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, userID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR role ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.ActiveOnly {
		baseWhere += " AND active = true"
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, name, role, daily_rate, joined_date, active, phone, nic, created_at, updated_at
		FROM employees
		WHERE %s
		ORDER BY name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.Name, &emp.Role, &emp.DailyRate,
			&emp.JoinedDate, &emp.Active, &emp.Phone, &emp.NIC,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	ptrs := make([]*employee.Employee, len(employees))
	for i := range employees {
		ptrs[i] = &employees[i]
	}
	if err := r.attachRolesAndHistory(ctx, ptrs, userID); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, role = $2, daily_rate = $3, joined_date = $4,
			active = $5, phone = $6, nic = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name, emp.Role, emp.DailyRate, emp.JoinedDate,
		emp.Active, emp.Phone, emp.NIC,
		emp.ID, emp.UserID,
	).Scan(&emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM rate_history WHERE employee_id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("failed to delete rate history: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM employee_roles WHERE employee_id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("failed to delete employee roles: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) InsertRateHistory(ctx context.Context, employeeID, userID string, entries []employee.RateHistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_history (id, employee_id, user_id, role_name, rate, effective_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	for i := range entries {
		err := q.QueryRow(ctx, query,
			entries[i].ID, employeeID, userID,
			entries[i].RoleName, entries[i].Rate, entries[i].EffectiveDate,
		).Scan(&entries[i].CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert rate history: %w", err)
		}
	}

	return nil
}

func (r *employeeRepository) ListRateHistory(ctx context.Context, employeeID, userID string) ([]employee.RateHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, role_name, rate, effective_date, created_at
		FROM rate_history
		WHERE employee_id = $1 AND user_id = $2
		ORDER BY effective_date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	defer rows.Close()

	var entries []employee.RateHistoryEntry
	for rows.Next() {
		var e employee.RateHistoryEntry
		if err := rows.Scan(&e.ID, &e.RoleName, &e.Rate, &e.EffectiveDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rate history: %w", err)
	}

	return entries, nil
}

func (r *employeeRepository) UpdateRoleRate(ctx context.Context, employeeID, userID, role string, rate decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employee_roles SET daily_rate = $1
		WHERE employee_id = $2 AND user_id = $3 AND name = $4
	`, rate, employeeID, userID, role)
	if err != nil {
		return fmt.Errorf("failed to update secondary role rate: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	tag, err = q.Exec(ctx, `
		UPDATE employees SET daily_rate = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND role = $4
	`, rate, employeeID, userID, role)
	if err != nil {
		return fmt.Errorf("failed to update employee rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrRoleNotFound
	}

	return nil
}

func (r *employeeRepository) ReplaceSecondaryRoles(ctx context.Context, employeeID, userID string, roles []employee.SecondaryRole) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_roles WHERE employee_id = $1 AND user_id = $2`, employeeID, userID); err != nil {
		return fmt.Errorf("failed to clear secondary roles: %w", err)
	}

	for _, sr := range roles {
		if err := r.insertSecondaryRole(ctx, employeeID, userID, sr); err != nil {
			return err
		}
	}

	return nil
}

func (r *employeeRepository) insertSecondaryRole(ctx context.Context, employeeID, userID string, sr employee.SecondaryRole) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO employee_roles (employee_id, user_id, name, daily_rate)
		VALUES ($1, $2, $3, $4)
	`, employeeID, userID, sr.Name, sr.DailyRate)
	if err != nil {
		return fmt.Errorf("failed to insert secondary role: %w", err)
	}

	return nil
}

// attachRolesAndHistory loads secondary roles and rate history for the
// given employees and distributes history entries to the role they belong
// to.
func (r *employeeRepository) attachRolesAndHistory(ctx context.Context, employees []*employee.Employee, userID string) error {
	if len(employees) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(employees))
	byID := make(map[string]*employee.Employee, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
		byID[emp.ID] = emp
	}

	roleRows, err := q.Query(ctx, `
		SELECT employee_id, name, daily_rate
		FROM employee_roles
		WHERE user_id = $1 AND employee_id = ANY($2)
		ORDER BY created_at ASC
	`, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to load secondary roles: %w", err)
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var empID string
		var sr employee.SecondaryRole
		if err := roleRows.Scan(&empID, &sr.Name, &sr.DailyRate); err != nil {
			return fmt.Errorf("failed to scan secondary role: %w", err)
		}
		if emp, ok := byID[empID]; ok {
			emp.SecondaryRoles = append(emp.SecondaryRoles, sr)
		}
	}
	if err := roleRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate secondary roles: %w", err)
	}

	histRows, err := q.Query(ctx, `
		SELECT employee_id, id, role_name, rate, effective_date, created_at
		FROM rate_history
		WHERE user_id = $1 AND employee_id = ANY($2)
		ORDER BY effective_date ASC, created_at ASC
	`, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to load rate history: %w", err)
	}
	defer histRows.Close()

	for histRows.Next() {
		var empID string
		var e employee.RateHistoryEntry
		if err := histRows.Scan(&empID, &e.ID, &e.RoleName, &e.Rate, &e.EffectiveDate, &e.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan rate history: %w", err)
		}
		emp, ok := byID[empID]
		if !ok {
			continue
		}
		if e.RoleName == emp.Role {
			emp.RateHistory = append(emp.RateHistory, e)
			continue
		}
		for i := range emp.SecondaryRoles {
			if emp.SecondaryRoles[i].Name == e.RoleName {
				emp.SecondaryRoles[i].History = append(emp.SecondaryRoles[i].History, e)
				break
			}
		}
	}
	if err := histRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rate history: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.Repository {
	return &paymentRepository{db: db}
}

const paymentColumns = `
	p.id, p.user_id, p.employee_id, p.amount, p.date, p.notes,
	p.created_at, p.updated_at,
	COALESCE(e.name, '') AS employee_name
`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var pay payment.Payment
	err := row.Scan(
		&pay.ID, &pay.UserID, &pay.EmployeeID, &pay.Amount, &pay.Date, &pay.Notes,
		&pay.CreatedAt, &pay.UpdatedAt,
		&pay.EmployeeName,
	)
	return pay, err
}

func (r *paymentRepository) Create(ctx context.Context, pay *payment.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, user_id, employee_id, amount, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pay.ID, pay.UserID, pay.EmployeeID, pay.Amount, pay.Date, pay.Notes,
	).Scan(&pay.CreatedAt, &pay.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id, userID string) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.user_id = $2
	`, paymentColumns)

	pay, err := scanPayment(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}

	return &pay, nil
}

func (r *paymentRepository) List(ctx context.Context, userID string, filter payment.PaymentFilter) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "p.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND p.date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND p.date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.date DESC, p.created_at DESC
	`, paymentColumns, baseWhere)

	return r.queryMany(ctx, q, query, args...)
}

func (r *paymentRepository) ListByEmployee(ctx context.Context, employeeID, userID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.user_id = $2
		ORDER BY p.date ASC
	`, paymentColumns)

	return r.queryMany(ctx, q, query, employeeID, userID)
}

func (r *paymentRepository) ListByDate(ctx context.Context, userID string, date time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.user_id = $1 AND p.date = $2
		ORDER BY p.created_at ASC
	`, paymentColumns)

	return r.queryMany(ctx, q, query, userID, date)
}

func (r *paymentRepository) Update(ctx context.Context, pay *payment.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET amount = $1, date = $2, notes = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		pay.Amount, pay.Date, pay.Notes, pay.ID, pay.UserID,
	).Scan(&pay.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

func (r *paymentRepository) DeleteByEmployee(ctx context.Context, employeeID, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM payments WHERE employee_id = $1 AND user_id = $2`, employeeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payments by employee: %w", err)
	}

	return nil
}

func (r *paymentRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payment.Payment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		pay, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

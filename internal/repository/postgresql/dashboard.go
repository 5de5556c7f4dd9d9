package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sitepay/sitepay-backend-go/internal/domain/dashboard"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetStats(ctx context.Context, userID string, today time.Time) (*dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	stats := &dashboard.Stats{}

	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE active)
		FROM employees
		WHERE user_id = $1
	`, userID).Scan(&stats.TotalEmployees, &stats.ActiveEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	err = q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendances
		WHERE user_id = $1 AND date = $2 AND status IN ('present', 'half-day')
	`, userID, today).Scan(&stats.PresentToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count present today: %w", err)
	}

	err = q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE user_id = $1
	`, userID).Scan(&stats.TotalPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	err = q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM sites
		WHERE user_id = $1 AND active
	`, userID).Scan(&stats.ActiveSites)
	if err != nil {
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}

	return stats, nil
}

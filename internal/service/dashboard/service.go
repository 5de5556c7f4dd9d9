package dashboard

import (
	"context"
	"time"

	"github.com/sitepay/sitepay-backend-go/internal/domain/dashboard"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.Repository
}

func NewDashboardService(dashboardRepo dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// GetStats implements dashboard.Service.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.dashboardRepo.GetStats(ctx, userID, today)
}

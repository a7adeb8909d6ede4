package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Dashboard is the admin metrics snapshot: a read over persisted users and
// orders at call time, not a live subscription.
type Dashboard struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalOrdersCompleted int64   `json:"totalOrdersCompleted"`
	TotalOrdersPending   int64   `json:"totalOrdersPending"`
	TotalSales           float64 `json:"totalSales"`
}

// DashboardService derives the read-only dashboard metrics.
type DashboardService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
	auth      *AuthService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository, auth *AuthService) *DashboardService {
	return &DashboardService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		auth:      auth,
	}
}

// Snapshot returns the current dashboard numbers for an administrator:
// shopper count, order counts by status and the summed totals of completed
// orders.
func (s *DashboardService) Snapshot(actorID string) (*Dashboard, error) {
	if _, err := s.auth.RequireAdmin(actorID); err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.CountByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}
	completed, err := s.orderRepo.CountByStatus(models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}
	sales, err := s.orderRepo.SumTotalByStatus(models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalUsers:           totalUsers,
		TotalOrdersCompleted: completed,
		TotalOrdersPending:   pending,
		TotalSales:           sales,
	}, nil
}

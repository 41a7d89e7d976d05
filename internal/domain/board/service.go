package board

import (
	"context"
	"fmt"
)

type Repository interface {
	Orders(ctx context.Context, status string, limit, offset int) ([]OrderRow, error)
	CountOrders(ctx context.Context, status string) (int, error)
	Payments(ctx context.Context, limit int) ([]PaymentRow, error)
	Issues(ctx context.Context, limit int) ([]IssueRow, error)
	Weather(ctx context.Context) ([]WeatherRow, error)
	SyncLogs(ctx context.Context, limit int) ([]SyncLogRow, error)
}

type Servicer interface {
	Orders(ctx context.Context, status string, page int) (*OrdersPage, error)
	Payments(ctx context.Context) ([]PaymentRow, error)
	Issues(ctx context.Context) ([]IssueRow, error)
	Weather(ctx context.Context) ([]WeatherRow, error)
	SyncLogs(ctx context.Context) ([]SyncLogRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Orders returns one page of synced orders, optionally narrowed to a
// single status. Pages outside the range come back empty rather than
// failing.
func (s *Service) Orders(ctx context.Context, status string, page int) (*OrdersPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.CountOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	rows, err := s.repo.Orders(ctx, status, OrdersPerPage, (page-1)*OrdersPerPage)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &OrdersPage{
		Orders:     rows,
		Page:       page,
		TotalPages: (total + OrdersPerPage - 1) / OrdersPerPage,
		Total:      total,
	}, nil
}

func (s *Service) Payments(ctx context.Context) ([]PaymentRow, error) {
	rows, err := s.repo.Payments(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return rows, nil
}

func (s *Service) Issues(ctx context.Context) ([]IssueRow, error) {
	rows, err := s.repo.Issues(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return rows, nil
}

func (s *Service) Weather(ctx context.Context) ([]WeatherRow, error) {
	rows, err := s.repo.Weather(ctx)
	if err != nil {
		return nil, fmt.Errorf("list weather: %w", err)
	}
	return rows, nil
}

func (s *Service) SyncLogs(ctx context.Context) ([]SyncLogRow, error) {
	rows, err := s.repo.SyncLogs(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list sync logs: %w", err)
	}
	return rows, nil
}

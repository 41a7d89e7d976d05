package metrics

import (
	"context"
	"fmt"
	"math"
)

type Repository interface {
	OrderStats(ctx context.Context) (OrderStats, error)
	PaymentStats(ctx context.Context) (PaymentStats, error)
	IssueStats(ctx context.Context) (IssueStats, error)
	WeatherStats(ctx context.Context) (WeatherStats, error)
}

type Servicer interface {
	Collect(ctx context.Context) (*Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Collect gathers per-source aggregates. Monetary sums are rounded to
// two decimal places.
func (s *Service) Collect(ctx context.Context) (*Summary, error) {
	orders, err := s.repo.OrderStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	payments, err := s.repo.PaymentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment stats: %w", err)
	}
	issues, err := s.repo.IssueStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("issue stats: %w", err)
	}
	weather, err := s.repo.WeatherStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather stats: %w", err)
	}

	orders.Revenue = round2(orders.Revenue)
	payments.Volume = round2(payments.Volume)

	return &Summary{
		Orders:  orders,
		Stripe:  payments,
		GitHub:  issues,
		Weather: weather,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

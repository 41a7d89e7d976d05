package postgres

import (
	"context"
	"fmt"

	"syncboard/internal/domain/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type MetricsRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMetricsRepository(pool *pgxpool.Pool, log *slog.Logger) *MetricsRepository {
	return &MetricsRepository{
		pool: pool,
		log:  log.With("component", "metrics_repository"),
	}
}

func (r *MetricsRepository) OrderStats(ctx context.Context) (metrics.OrderStats, error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0)
		FROM orders`

	var stats metrics.OrderStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Pending, &stats.Completed, &stats.Revenue)
	if err != nil {
		r.log.Error("failed to collect order stats", "error", err)
		return metrics.OrderStats{}, fmt.Errorf("order stats: %w", err)
	}
	return stats, nil
}

func (r *MetricsRepository) PaymentStats(ctx context.Context) (metrics.PaymentStats, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'succeeded'), 0)
		FROM stripe_payments`

	var stats metrics.PaymentStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Volume); err != nil {
		r.log.Error("failed to collect payment stats", "error", err)
		return metrics.PaymentStats{}, fmt.Errorf("payment stats: %w", err)
	}
	return stats, nil
}

func (r *MetricsRepository) IssueStats(ctx context.Context) (metrics.IssueStats, error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE state = 'open')
		FROM github_issues`

	var stats metrics.IssueStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Open); err != nil {
		r.log.Error("failed to collect issue stats", "error", err)
		return metrics.IssueStats{}, fmt.Errorf("issue stats: %w", err)
	}
	return stats, nil
}

func (r *MetricsRepository) WeatherStats(ctx context.Context) (metrics.WeatherStats, error) {
	const query = `
		SELECT COUNT(DISTINCT city), COUNT(*)
		FROM weather_data`

	var stats metrics.WeatherStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Cities, &stats.Readings); err != nil {
		r.log.Error("failed to collect weather stats", "error", err)
		return metrics.WeatherStats{}, fmt.Errorf("weather stats: %w", err)
	}
	return stats, nil
}

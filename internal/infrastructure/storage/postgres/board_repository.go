package postgres

import (
	"context"
	"fmt"

	"syncboard/internal/domain/board"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type BoardRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBoardRepository(pool *pgxpool.Pool, log *slog.Logger) *BoardRepository {
	return &BoardRepository{
		pool: pool,
		log:  log.With("component", "board_repository"),
	}
}

func (r *BoardRepository) Orders(ctx context.Context, status string, limit, offset int) ([]board.OrderRow, error) {
	query := `
		SELECT id, external_id, customer_name, status, amount, source, created_at
		FROM orders`

	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list orders", "status", status, "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []board.OrderRow{}
	for rows.Next() {
		var o board.OrderRow
		err := rows.Scan(&o.ID, &o.ExternalID, &o.CustomerName, &o.Status, &o.Amount, &o.Source, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *BoardRepository) CountOrders(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("failed to count orders", "status", status, "error", err)
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

func (r *BoardRepository) Payments(ctx context.Context, limit int) ([]board.PaymentRow, error) {
	const query = `
		SELECT id, payment_id, amount, currency, status, customer_email, description, created_at
		FROM stripe_payments
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list payments", "error", err)
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []board.PaymentRow{}
	for rows.Next() {
		var p board.PaymentRow
		err := rows.Scan(&p.ID, &p.PaymentID, &p.Amount, &p.Currency, &p.Status, &p.CustomerEmail, &p.Description, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *BoardRepository) Issues(ctx context.Context, limit int) ([]board.IssueRow, error) {
	const query = `
		SELECT id, issue_id, title, state, author, repository, labels, created_at
		FROM github_issues
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list issues", "error", err)
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	issues := []board.IssueRow{}
	for rows.Next() {
		var i board.IssueRow
		err := rows.Scan(&i.ID, &i.IssueID, &i.Title, &i.State, &i.Author, &i.Repository, &i.Labels, &i.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (r *BoardRepository) Weather(ctx context.Context) ([]board.WeatherRow, error) {
	const query = `
		SELECT id, city, temperature, feels_like, humidity, description, wind_speed, recorded_at
		FROM weather_data
		ORDER BY recorded_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list weather readings", "error", err)
		return nil, fmt.Errorf("list weather: %w", err)
	}
	defer rows.Close()

	readings := []board.WeatherRow{}
	for rows.Next() {
		var w board.WeatherRow
		err := rows.Scan(&w.ID, &w.City, &w.Temperature, &w.FeelsLike, &w.Humidity, &w.Description, &w.WindSpeed, &w.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("scan weather reading: %w", err)
		}
		readings = append(readings, w)
	}
	return readings, rows.Err()
}

func (r *BoardRepository) SyncLogs(ctx context.Context, limit int) ([]board.SyncLogRow, error) {
	const query = `
		SELECT id, source, records_synced, status, synced_at
		FROM sync_logs
		ORDER BY synced_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("failed to list sync logs", "error", err)
		return nil, fmt.Errorf("list sync logs: %w", err)
	}
	defer rows.Close()

	logs := []board.SyncLogRow{}
	for rows.Next() {
		var l board.SyncLogRow
		err := rows.Scan(&l.ID, &l.Source, &l.RecordsSynced, &l.Status, &l.SyncedAt)
		if err != nil {
			return nil, fmt.Errorf("scan sync log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

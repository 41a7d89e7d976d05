package postgres

import (
	"context"
	"fmt"
	"time"

	"syncboard/internal/domain/audit"
	"syncboard/internal/domain/source"
	syncdomain "syncboard/internal/domain/sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// SyncRepository runs each reconciliation pass in one transaction.
// Keyed inserts use ON CONFLICT DO NOTHING: a row racing in between the
// existence check and the insert is reported as not-inserted instead of
// aborting the transaction with a unique violation.
type SyncRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSyncRepository(pool *pgxpool.Pool, log *slog.Logger) *SyncRepository {
	return &SyncRepository{
		pool: pool,
		log:  log.With("component", "sync_repository"),
	}
}

func (r *SyncRepository) WithinTx(ctx context.Context, fn func(tx syncdomain.TxRepository) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&txRepository{q: tx, log: r.log})
	})
}

type txRepository struct {
	q   Querier
	log *slog.Logger
}

func (r *txRepository) OrderExists(ctx context.Context, externalID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM orders WHERE external_id = $1)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, externalID).Scan(&exists); err != nil {
		r.log.Error("failed to check order", "external_id", externalID, "error", err)
		return false, fmt.Errorf("order exists: %w", err)
	}
	return exists, nil
}

func (r *txRepository) InsertOrder(ctx context.Context, o source.Order, src string, syncedAt time.Time) (bool, error) {
	const query = `
		INSERT INTO orders (external_id, customer_name, status, amount, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (external_id) DO NOTHING`

	tag, err := r.q.Exec(ctx, query,
		o.ExternalID, o.CustomerName, o.Status, o.Amount, src, syncedAt)
	if err != nil {
		r.log.Error("failed to insert order", "external_id", o.ExternalID, "error", err)
		return false, fmt.Errorf("insert order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *txRepository) PaymentExists(ctx context.Context, paymentID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM stripe_payments WHERE payment_id = $1)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, paymentID).Scan(&exists); err != nil {
		r.log.Error("failed to check payment", "payment_id", paymentID, "error", err)
		return false, fmt.Errorf("payment exists: %w", err)
	}
	return exists, nil
}

func (r *txRepository) InsertPayment(ctx context.Context, p source.Payment, syncedAt time.Time) (bool, error) {
	const query = `
		INSERT INTO stripe_payments (payment_id, amount, currency, status, customer_email, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_id) DO NOTHING`

	tag, err := r.q.Exec(ctx, query,
		p.PaymentID, p.Amount, p.Currency, p.Status, p.CustomerEmail, p.Description, syncedAt)
	if err != nil {
		r.log.Error("failed to insert payment", "payment_id", p.PaymentID, "error", err)
		return false, fmt.Errorf("insert payment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *txRepository) IssueExists(ctx context.Context, issueID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM github_issues WHERE issue_id = $1)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, issueID).Scan(&exists); err != nil {
		r.log.Error("failed to check issue", "issue_id", issueID, "error", err)
		return false, fmt.Errorf("issue exists: %w", err)
	}
	return exists, nil
}

func (r *txRepository) InsertIssue(ctx context.Context, i source.Issue, syncedAt time.Time) (bool, error) {
	const query = `
		INSERT INTO github_issues (issue_id, title, state, author, repository, labels, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (issue_id) DO NOTHING`

	tag, err := r.q.Exec(ctx, query,
		i.IssueID, i.Title, i.State, i.Author, i.Repository, i.Labels, syncedAt)
	if err != nil {
		r.log.Error("failed to insert issue", "issue_id", i.IssueID, "error", err)
		return false, fmt.Errorf("insert issue: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *txRepository) InsertWeather(ctx context.Context, w source.WeatherReading, syncedAt time.Time) error {
	const query = `
		INSERT INTO weather_data (city, temperature, feels_like, humidity, description, wind_speed, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(ctx, query,
		w.City, w.Temperature, w.FeelsLike, w.Humidity, w.Description, w.WindSpeed, syncedAt)
	if err != nil {
		r.log.Error("failed to insert weather reading", "city", w.City, "error", err)
		return fmt.Errorf("insert weather: %w", err)
	}
	return nil
}

func (r *txRepository) InsertAttempt(ctx context.Context, a syncdomain.Attempt) error {
	const query = `
		INSERT INTO sync_logs (source, records_synced, status, synced_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.q.Exec(ctx, query, a.Source, a.RecordsSynced, a.Status, a.SyncedAt)
	if err != nil {
		r.log.Error("failed to insert sync log", "source", a.Source, "error", err)
		return fmt.Errorf("insert sync log: %w", err)
	}
	return nil
}

func (r *txRepository) InsertAudit(ctx context.Context, rec audit.Record) error {
	return insertAudit(ctx, r.q, r.log, rec)
}

package postgres

import (
	"context"
	"fmt"

	"syncboard/internal/domain/audit"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type AuditRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAuditRepository(pool *pgxpool.Pool, log *slog.Logger) *AuditRepository {
	return &AuditRepository{
		pool: pool,
		log:  log.With("component", "audit_repository"),
	}
}

func (r *AuditRepository) Insert(ctx context.Context, rec audit.Record) error {
	return insertAudit(ctx, r.pool, r.log, rec)
}

// insertAudit is shared with the sync transaction, which writes its
// audit entry through the same statement.
func insertAudit(ctx context.Context, q Querier, log *slog.Logger, rec audit.Record) error {
	const query = `
		INSERT INTO audit_logs (username, action, resource, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query,
		rec.Username, rec.Action, rec.Resource, rec.Details, rec.CreatedAt)
	if err != nil {
		log.Error("failed to insert audit entry",
			"username", rec.Username, "action", rec.Action, "error", err)
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

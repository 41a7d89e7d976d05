package sync

import (
	"context"
	"time"

	"syncboard/internal/domain/audit"
	"syncboard/internal/domain/source"
)

// Repository scopes one reconciliation pass to a single transaction: all
// staged rows, the attempt record and the audit entry commit together or
// not at all.
type Repository interface {
	WithinTx(ctx context.Context, fn func(tx TxRepository) error) error
}

// TxRepository is the per-transaction surface. Keyed inserts report
// whether a row was actually written; false with a nil error means the
// storage layer rejected a concurrent duplicate and the record should be
// counted as already present.
type TxRepository interface {
	OrderExists(ctx context.Context, externalID string) (bool, error)
	InsertOrder(ctx context.Context, o source.Order, src string, syncedAt time.Time) (bool, error)

	PaymentExists(ctx context.Context, paymentID string) (bool, error)
	InsertPayment(ctx context.Context, p source.Payment, syncedAt time.Time) (bool, error)

	IssueExists(ctx context.Context, issueID int64) (bool, error)
	InsertIssue(ctx context.Context, i source.Issue, syncedAt time.Time) (bool, error)

	InsertWeather(ctx context.Context, w source.WeatherReading, syncedAt time.Time) error

	InsertAttempt(ctx context.Context, a Attempt) error
	InsertAudit(ctx context.Context, rec audit.Record) error
}

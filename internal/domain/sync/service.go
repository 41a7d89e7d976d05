package sync

import (
	"context"
	"fmt"
	"time"

	"syncboard/internal/domain/audit"
	"syncboard/internal/domain/source"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	SyncOrders(ctx context.Context, actor string) (*Outcome, error)
	SyncPayments(ctx context.Context, actor string) (*Outcome, error)
	SyncIssues(ctx context.Context, actor string) (*Outcome, error)
	SyncWeather(ctx context.Context, actor string) (*Outcome, error)
}

// Service reconciles externally fetched batches against the store.
// Reconciliation is insert-only: records whose natural identifier is
// already present are skipped, never updated.
type Service struct {
	repo     Repository
	orders   source.OrderFetcher
	payments source.PaymentFetcher
	issues   source.IssueFetcher
	weather  source.WeatherFetcher
	log      *slog.Logger
}

func NewService(
	repo Repository,
	orders source.OrderFetcher,
	payments source.PaymentFetcher,
	issues source.IssueFetcher,
	weather source.WeatherFetcher,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		orders:   orders,
		payments: payments,
		issues:   issues,
		weather:  weather,
		log:      log.With(slog.String("component", "sync")),
	}
}

func (s *Service) SyncOrders(ctx context.Context, actor string) (*Outcome, error) {
	batch := s.orders.Fetch(ctx, source.DefaultOrderLimit)

	var synced int
	err := s.repo.WithinTx(ctx, func(tx TxRepository) error {
		now := time.Now().UTC()
		for _, o := range batch.Orders {
			exists, err := tx.OrderExists(ctx, o.ExternalID)
			if err != nil {
				return fmt.Errorf("lookup order %s: %w", o.ExternalID, err)
			}
			if exists {
				continue
			}
			inserted, err := tx.InsertOrder(ctx, o, batch.Label, now)
			if err != nil {
				return fmt.Errorf("insert order %s: %w", o.ExternalID, err)
			}
			if inserted {
				synced++
			}
		}
		return s.finish(ctx, tx, source.SaaS, "orders", actor, synced, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("orders synced", "count", synced, "label", batch.Label)
	return &Outcome{Synced: synced, Source: batch.Label}, nil
}

func (s *Service) SyncPayments(ctx context.Context, actor string) (*Outcome, error) {
	batch := s.payments.Fetch(ctx, source.DefaultPaymentLimit)

	var synced int
	err := s.repo.WithinTx(ctx, func(tx TxRepository) error {
		now := time.Now().UTC()
		for _, p := range batch.Payments {
			exists, err := tx.PaymentExists(ctx, p.PaymentID)
			if err != nil {
				return fmt.Errorf("lookup payment %s: %w", p.PaymentID, err)
			}
			if exists {
				continue
			}
			inserted, err := tx.InsertPayment(ctx, p, now)
			if err != nil {
				return fmt.Errorf("insert payment %s: %w", p.PaymentID, err)
			}
			if inserted {
				synced++
			}
		}
		return s.finish(ctx, tx, source.Stripe, "payments", actor, synced, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payments synced", "count", synced, "label", batch.Label)
	return &Outcome{Synced: synced, Source: batch.Label}, nil
}

func (s *Service) SyncIssues(ctx context.Context, actor string) (*Outcome, error) {
	batch := s.issues.Fetch(ctx, source.DefaultIssueLimit)

	var synced int
	err := s.repo.WithinTx(ctx, func(tx TxRepository) error {
		now := time.Now().UTC()
		for _, issue := range batch.Issues {
			exists, err := tx.IssueExists(ctx, issue.IssueID)
			if err != nil {
				return fmt.Errorf("lookup issue %d: %w", issue.IssueID, err)
			}
			if exists {
				continue
			}
			inserted, err := tx.InsertIssue(ctx, issue, now)
			if err != nil {
				return fmt.Errorf("insert issue %d: %w", issue.IssueID, err)
			}
			if inserted {
				synced++
			}
		}
		return s.finish(ctx, tx, source.GitHub, "issues", actor, synced, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("issues synced", "count", synced, "label", batch.Label)
	return &Outcome{Synced: synced, Source: batch.Label}, nil
}

// SyncWeather appends every reading: weather observations carry no
// natural identifier, so there is nothing to deduplicate against.
func (s *Service) SyncWeather(ctx context.Context, actor string) (*Outcome, error) {
	batch := s.weather.Fetch(ctx)

	var synced int
	err := s.repo.WithinTx(ctx, func(tx TxRepository) error {
		now := time.Now().UTC()
		for _, r := range batch.Readings {
			if err := tx.InsertWeather(ctx, r, now); err != nil {
				return fmt.Errorf("insert weather reading for %s: %w", r.City, err)
			}
			synced++
		}
		return s.finish(ctx, tx, source.OpenWeather, "weather", actor, synced, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("weather synced", "count", synced, "label", batch.Label)
	return &Outcome{Synced: synced, Source: batch.Label}, nil
}

// finish writes the attempt log and the audit entry inside the same
// transaction as the staged rows.
func (s *Service) finish(ctx context.Context, tx TxRepository, src, resource, actor string, synced int, now time.Time) error {
	err := tx.InsertAttempt(ctx, Attempt{
		Source:        src,
		RecordsSynced: synced,
		Status:        StatusSuccess,
		SyncedAt:      now,
	})
	if err != nil {
		return fmt.Errorf("record sync attempt: %w", err)
	}

	err = tx.InsertAudit(ctx, audit.Record{
		Username:  actor,
		Action:    audit.ActionSync,
		Resource:  resource,
		Details:   fmt.Sprintf("Synced %d %s", synced, resource),
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

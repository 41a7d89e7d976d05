package audit

import (
	"context"
	"time"
)

// Actions recorded for security-relevant operations.
const (
	ActionLogin = "login"
	ActionSync  = "sync"
)

// Record is one append-only audit entry. Rows are never updated or
// deleted.
type Record struct {
	ID        int       `json:"id"`
	Username  string    `json:"user"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	Insert(ctx context.Context, rec Record) error
}

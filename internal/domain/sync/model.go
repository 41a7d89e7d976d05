package sync

import "time"

const StatusSuccess = "success"

// Attempt is the immutable log entry written once per sync invocation.
type Attempt struct {
	ID            int       `json:"id"`
	Source        string    `json:"source"`
	RecordsSynced int       `json:"records_synced"`
	Status        string    `json:"status"`
	SyncedAt      time.Time `json:"synced_at"`
}

// Outcome is what a sync invocation reports back: how many rows were
// newly inserted and which adapter path produced the batch.
type Outcome struct {
	Synced int
	Source string
}

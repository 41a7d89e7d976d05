package sync

type syncInput struct{}

type syncOutput struct {
	Status int
	Body   SyncResponse
}

type SyncResponse struct {
	Success bool   `json:"success"`
	Synced  int    `json:"synced"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

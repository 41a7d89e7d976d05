package board

import "time"

const (
	OrdersPerPage = 20
	ListLimit     = 50
)

// Row types mirror the stored records, identifiers included, so the
// list endpoints can expose exactly what a sync run persisted.

type OrderRow struct {
	ID           int64     `json:"id"`
	ExternalID   string    `json:"external_id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentRow struct {
	ID            int64     `json:"id"`
	PaymentID     string    `json:"payment_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customer_email"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

type IssueRow struct {
	ID         int64     `json:"id"`
	IssueID    int64     `json:"issue_id"`
	Title      string    `json:"title"`
	State      string    `json:"state"`
	Author     string    `json:"author"`
	Repository string    `json:"repository"`
	Labels     string    `json:"labels"`
	CreatedAt  time.Time `json:"created_at"`
}

type WeatherRow struct {
	ID          int64     `json:"id"`
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	Description string    `json:"description"`
	WindSpeed   float64   `json:"wind_speed"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type SyncLogRow struct {
	ID            int64     `json:"id"`
	Source        string    `json:"source"`
	RecordsSynced int       `json:"records_synced"`
	Status        string    `json:"status"`
	SyncedAt      time.Time `json:"synced_at"`
}

// OrdersPage is one page of the order listing, newest first.
type OrdersPage struct {
	Orders     []OrderRow `json:"orders"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"total"`
}

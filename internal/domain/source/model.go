package source

import (
	"context"
	"time"
)

// Canonical source names used in sync logs and audit records. The batch
// label additionally carries a _live/_mock suffix showing where the data
// actually came from.
const (
	SaaS        = "saas"
	Stripe      = "stripe"
	GitHub      = "github"
	OpenWeather = "openweather"
)

// Default batch sizes per provider.
const (
	DefaultOrderLimit   = 50
	DefaultPaymentLimit = 25
	DefaultIssueLimit   = 25
)

// Order is a sales order pulled from the SaaS API. ExternalID is the
// natural identifier used for deduplication. CreatedAt travels on the
// feed wire only; the store stamps rows with the sync time.
type Order struct {
	ExternalID   string
	CustomerName string
	Status       string
	Amount       float64
	CreatedAt    time.Time
}

// Payment is a charge pulled from the payment provider, keyed by PaymentID.
type Payment struct {
	PaymentID     string
	Amount        float64
	Currency      string
	Status        string
	CustomerEmail string
	Description   string
}

// Issue is a tracker issue, keyed by the provider-assigned IssueID.
type Issue struct {
	IssueID    int64
	Title      string
	State      string
	Author     string
	Repository string
	Labels     string
}

// WeatherReading is a point-in-time observation. It has no natural
// identifier; every reading is appended as-is.
type WeatherReading struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
	WindSpeed   float64
}

// Customer and Event are served by the public mock API only; the sync
// engine does not reconcile them.
type Customer struct {
	ExternalID string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company"`
	CreatedAt  time.Time `json:"created_at"`
}

type Event struct {
	ExternalID  string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderBatch struct {
	Orders []Order
	Label  string
	Live   bool
}

type PaymentBatch struct {
	Payments []Payment
	Label    string
	Live     bool
}

type IssueBatch struct {
	Issues []Issue
	Label  string
	Live   bool
}

type WeatherBatch struct {
	Readings []WeatherReading
	Label    string
	Live     bool
}

// Fetchers are the adapter contracts consumed by the sync engine. Fetch
// never fails: when the live path is unavailable or errors out, the
// adapter substitutes generated records and the batch label says so.
type OrderFetcher interface {
	Fetch(ctx context.Context, limit int) OrderBatch
}

type PaymentFetcher interface {
	Fetch(ctx context.Context, limit int) PaymentBatch
}

type IssueFetcher interface {
	Fetch(ctx context.Context, limit int) IssueBatch
}

type WeatherFetcher interface {
	Fetch(ctx context.Context) WeatherBatch
}

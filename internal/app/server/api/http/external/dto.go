package external

import (
	"time"

	"syncboard/internal/domain/source"
)

// Feed sizes mirror the upstream API being simulated.
const (
	orderCount    = 50
	customerCount = 20
	eventCount    = 30
)

type feedInput struct{}

type orderDTO struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type ordersOutput struct {
	Body OrdersResponse
}

type OrdersResponse struct {
	Data      []orderDTO `json:"data"`
	Source    string     `json:"source"`
	Timestamp time.Time  `json:"timestamp"`
}

type customersOutput struct {
	Body CustomersResponse
}

type CustomersResponse struct {
	Data      []source.Customer `json:"data"`
	Source    string            `json:"source"`
	Timestamp time.Time         `json:"timestamp"`
}

type eventsOutput struct {
	Body EventsResponse
}

type EventsResponse struct {
	Data      []source.Event `json:"data"`
	Source    string         `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}

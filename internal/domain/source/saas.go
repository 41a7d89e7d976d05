package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

const clientTimeout = 10 * time.Second

// SaaSClient pulls orders from the mock SaaS API (served by this process
// under /external, or any compatible deployment).
type SaaSClient struct {
	baseURL string
	http    *http.Client
}

func NewSaaSClient(baseURL string) *SaaSClient {
	return &SaaSClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

type saasOrder struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type saasOrdersResponse struct {
	Data []saasOrder `json:"data"`
}

func (c *SaaSClient) Orders(ctx context.Context, limit int) ([]Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/external/orders", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("saas api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("saas api: unexpected status %d", resp.StatusCode)
	}

	var body saasOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode saas response: %w", err)
	}

	orders := make([]Order, 0, len(body.Data))
	for i, o := range body.Data {
		if limit > 0 && i >= limit {
			break
		}
		orders = append(orders, Order{
			ExternalID:   o.ID,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			Amount:       o.Amount,
			CreatedAt:    o.CreatedAt,
		})
	}
	return orders, nil
}

// SaaSAdapter serves order batches, preferring the live API and falling
// back to generated data. The fallback decision lives here, not in the
// client: the client reports errors, the adapter decides what to do.
type SaaSAdapter struct {
	client *SaaSClient
	log    *slog.Logger
}

// NewSaaSAdapter builds the adapter; an empty baseURL means mock-only.
func NewSaaSAdapter(baseURL string, log *slog.Logger) *SaaSAdapter {
	a := &SaaSAdapter{log: log.With(slog.String("source", SaaS))}
	if baseURL != "" {
		a.client = NewSaaSClient(baseURL)
	}
	return a
}

func (a *SaaSAdapter) Fetch(ctx context.Context, limit int) OrderBatch {
	if a.client == nil {
		return OrderBatch{Orders: GenerateOrders(limit), Label: SaaS + "_mock"}
	}

	orders, err := a.client.Orders(ctx, limit)
	if err != nil {
		a.log.Warn("live fetch failed, serving generated records", "error", err)
		return OrderBatch{Orders: GenerateOrders(limit), Label: SaaS + "_mock"}
	}
	return OrderBatch{Orders: orders, Label: SaaS + "_live", Live: true}
}

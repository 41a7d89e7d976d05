package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
)

const stripeBaseURL = "https://api.stripe.com"

// StripeClient fetches recent charges. The secret key is sent as basic
// auth username, which is how the Stripe REST API expects it.
type StripeClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		apiKey:  apiKey,
		baseURL: stripeBaseURL,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

type stripeCharge struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	Description    string `json:"description"`
	BillingDetails struct {
		Email string `json:"email"`
	} `json:"billing_details"`
}

type stripeChargesResponse struct {
	Data []stripeCharge `json:"data"`
}

func (c *StripeClient) Charges(ctx context.Context, limit int) ([]Payment, error) {
	url := c.baseURL + "/v1/charges?limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe api: unexpected status %d", resp.StatusCode)
	}

	var body stripeChargesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode stripe response: %w", err)
	}

	payments := make([]Payment, 0, len(body.Data))
	for _, ch := range body.Data {
		email := ch.BillingDetails.Email
		if email == "" {
			email = "N/A"
		}
		description := ch.Description
		if description == "" {
			description = "No description"
		}
		currency := ch.Currency
		if currency == "" {
			currency = "usd"
		}
		payments = append(payments, Payment{
			PaymentID:     ch.ID,
			Amount:        float64(ch.Amount) / 100, // Stripe amounts are in cents
			Currency:      strings.ToUpper(currency),
			Status:        ch.Status,
			CustomerEmail: email,
			Description:   description,
		})
	}
	return payments, nil
}

type StripeAdapter struct {
	client *StripeClient
	log    *slog.Logger
}

func NewStripeAdapter(apiKey string, log *slog.Logger) *StripeAdapter {
	a := &StripeAdapter{log: log.With(slog.String("source", Stripe))}
	if apiKey != "" {
		a.client = NewStripeClient(apiKey)
	}
	return a
}

func (a *StripeAdapter) Fetch(ctx context.Context, limit int) PaymentBatch {
	if a.client == nil {
		return PaymentBatch{Payments: GeneratePayments(limit), Label: Stripe + "_mock"}
	}

	payments, err := a.client.Charges(ctx, limit)
	if err != nil {
		a.log.Warn("live fetch failed, serving generated records", "error", err)
		return PaymentBatch{Payments: GeneratePayments(limit), Label: Stripe + "_mock"}
	}
	return PaymentBatch{Payments: payments, Label: Stripe + "_live", Live: true}
}

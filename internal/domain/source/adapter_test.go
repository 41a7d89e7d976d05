package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStripeAdapter_NoCredential_NoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	adapter := NewStripeAdapter("", slog.Default())

	batch := adapter.Fetch(context.Background(), 5)

	assert.Equal(t, "stripe_mock", batch.Label)
	assert.False(t, batch.Live)
	assert.Len(t, batch.Payments, 5)
	assert.EqualValues(t, 0, calls.Load())
}

func TestStripeAdapter_LiveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_123", user)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"id": "ch_1", "amount": 2599, "currency": "usd", "status": "succeeded",
			 "created": 1700000000, "billing_details": {"email": "a@b.com"},
			 "description": "Subscription"}
		]}`))
	}))
	defer srv.Close()

	adapter := NewStripeAdapter("sk_test_123", slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background(), 25)

	assert.Equal(t, "stripe_live", batch.Label)
	assert.True(t, batch.Live)
	require.Len(t, batch.Payments, 1)
	p := batch.Payments[0]
	assert.Equal(t, "ch_1", p.PaymentID)
	assert.Equal(t, 25.99, p.Amount)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "a@b.com", p.CustomerEmail)
}

func TestStripeAdapter_LiveFailure_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := NewStripeAdapter("sk_test_123", slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background(), 10)

	assert.Equal(t, "stripe_mock", batch.Label)
	assert.False(t, batch.Live)
	assert.Len(t, batch.Payments, 10)
}

func TestGitHubAdapter_LiveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widget/issues", r.URL.Path)
		assert.Equal(t, "token gh_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 777, "title": "Broken build", "state": "open",
			 "user": {"login": "dev1"}, "labels": [{"name": "bug"}, {"name": "ci"}],
			 "created_at": "2024-01-02T03:04:05Z"}
		]`))
	}))
	defer srv.Close()

	adapter := NewGitHubAdapter("gh_test", "acme/widget", slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background(), 25)

	assert.Equal(t, "github_live", batch.Label)
	require.Len(t, batch.Issues, 1)
	issue := batch.Issues[0]
	assert.EqualValues(t, 777, issue.IssueID)
	assert.Equal(t, "dev1", issue.Author)
	assert.Equal(t, "acme/widget", issue.Repository)
	assert.Equal(t, "bug,ci", issue.Labels)
}

func TestGitHubAdapter_TruncatesLongTitleOnRuneBoundary(t *testing.T) {
	longTitle := strings.Repeat("编", 300)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		payload, err := json.Marshal([]map[string]any{{
			"id": 1, "title": longTitle, "state": "open",
			"user": map[string]string{"login": "dev1"},
		}})
		require.NoError(t, err)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	adapter := NewGitHubAdapter("gh_test", "acme/widget", slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background(), 25)

	require.Len(t, batch.Issues, 1)
	title := batch.Issues[0].Title
	assert.True(t, utf8.ValidString(title))
	assert.Equal(t, 200, utf8.RuneCountInString(title))
	assert.Equal(t, strings.Repeat("编", 200), title)
}

func TestGitHubAdapter_BadStatus_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	adapter := NewGitHubAdapter("gh_test", "acme/widget", slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background(), 7)

	assert.Equal(t, "github_mock", batch.Label)
	assert.Len(t, batch.Issues, 7)
}

func TestWeatherAdapter_PartialCityFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Atlantis" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main": {"temp": 12.5, "feels_like": 11.0, "humidity": 60},
			"weather": [{"description": "light rain"}], "wind": {"speed": 3.2}}`))
	}))
	defer srv.Close()

	adapter := NewWeatherAdapter("ow_test", []string{"London", "Atlantis"}, slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background())

	assert.Equal(t, "openweather_live", batch.Label)
	require.Len(t, batch.Readings, 1)
	assert.Equal(t, "London", batch.Readings[0].City)
	assert.Equal(t, 12.5, batch.Readings[0].Temperature)
}

func TestWeatherAdapter_AllCitiesFail_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	adapter := NewWeatherAdapter("ow_test", []string{"London", "Paris"}, slog.Default())
	adapter.client.baseURL = srv.URL

	batch := adapter.Fetch(context.Background())

	assert.Equal(t, "openweather_mock", batch.Label)
	assert.Len(t, batch.Readings, 2)
}

func TestSaaSAdapter_LiveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/external/orders", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"id": "ord_10000", "customer_name": "Acme Corp", "status": "completed",
			 "amount": 150.5, "created_at": "2024-03-01T10:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	adapter := NewSaaSAdapter(srv.URL, slog.Default())

	batch := adapter.Fetch(context.Background(), 50)

	assert.Equal(t, "saas_live", batch.Label)
	require.Len(t, batch.Orders, 1)
	assert.Equal(t, "ord_10000", batch.Orders[0].ExternalID)
	assert.Equal(t, 150.5, batch.Orders[0].Amount)
}

func TestSaaSAdapter_MockOnly(t *testing.T) {
	adapter := NewSaaSAdapter("", slog.Default())

	batch := adapter.Fetch(context.Background(), 50)

	assert.Equal(t, "saas_mock", batch.Label)
	assert.Len(t, batch.Orders, 50)
}

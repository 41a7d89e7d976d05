package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"syncboard/internal/app/client/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Env:           "local",
		ServerAddress: serverURL,
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
	}

	app, err := New(cfg, slog.Default())
	require.NoError(t, err)
	return app
}

func TestApp_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok123","username":"admin","role":"admin","name":"Admin User"}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	result, err := app.Login(context.Background(), "admin", "password")

	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, "tok123", result.Token)
	assert.True(t, app.IsAuthenticated())
}

func TestApp_Login_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	_, err := app.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.False(t, app.IsAuthenticated())
}

func TestApp_Sync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/stripe", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"synced":25,"source":"stripe_mock"}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	app.http.SetToken("tok123")

	result, err := app.Sync(context.Background(), "stripe")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 25, result.Synced)
	assert.Equal(t, "stripe_mock", result.Source)
}

func TestApp_Sync_UnknownSource(t *testing.T) {
	app := newTestApp(t, "http://localhost:1")

	_, err := app.Sync(context.Background(), "jira")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestApp_Sync_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Insufficient permissions"}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	app.http.SetToken("viewer-token")

	_, err := app.Sync(context.Background(), "orders")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient permissions")
}

func TestApp_Metrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/metrics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"orders": {"total": 50, "pending": 8, "completed": 30, "revenue": 12345.67},
			"stripe": {"total": 25, "volume": 999.5},
			"github": {"total": 25, "open": 14},
			"weather": {"cities": 5, "readings": 10}
		}`))
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	app.http.SetToken("tok123")

	summary, err := app.Metrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 50, summary.Orders.Total)
	assert.Equal(t, 12345.67, summary.Orders.Revenue)
	assert.Equal(t, 14, summary.GitHub.Open)
}

func TestApp_TokenPersistence(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		ServerAddress: "http://localhost:8080",
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
	}

	first, err := New(cfg, slog.Default())
	require.NoError(t, err)
	first.http.SetToken("persisted-token")
	require.NoError(t, first.SaveToken())

	second, err := New(cfg, slog.Default())
	require.NoError(t, err)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "persisted-token", second.http.token)

	require.NoError(t, second.ClearToken())
	third, err := New(cfg, slog.Default())
	require.NoError(t, err)
	assert.False(t, third.IsAuthenticated())
}

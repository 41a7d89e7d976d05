package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"syncboard/internal/app/client/config"
	"syncboard/internal/domain/metrics"

	"golang.org/x/exp/slog"
)

// Sources accepted by the sync endpoints.
var SyncSources = []string{"orders", "stripe", "github", "weather"}

type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Error    string `json:"error,omitempty"`
}

type SyncResult struct {
	Success bool   `json:"success"`
	Synced  int    `json:"synced"`
	Source  string `json:"source"`
	Error   string `json:"error,omitempty"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{
		config: cfg,
		log:    log,
		http:   newHTTPClient(strings.TrimRight(cfg.ServerAddress, "/"), log),
	}

	// A previously saved token is picked up silently; expired tokens
	// simply fail on first use.
	if token, err := app.loadToken(); err == nil && token != "" {
		app.http.SetToken(token)
	}

	return app, nil
}

func (a *App) IsAuthenticated() bool {
	return a.http.token != ""
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

// Login authenticates against the server and keeps the token for
// subsequent calls in this process.
func (a *App) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	resp, err := a.http.doRequest(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := a.http.parseResponse(resp, &result); err != nil {
		return nil, err
	}

	a.http.SetToken(result.Token)
	return &result, nil
}

// Sync triggers one synchronization pass on the server. Requires an
// admin token.
func (a *App) Sync(ctx context.Context, source string) (*SyncResult, error) {
	valid := false
	for _, s := range SyncSources {
		if s == source {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("unknown source %q (expected one of: %s)",
			source, strings.Join(SyncSources, ", "))
	}

	resp, err := a.http.doRequest(ctx, http.MethodPost, "/api/sync/"+source, nil)
	if err != nil {
		return nil, err
	}

	var result SyncResult
	if err := a.http.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *App) Metrics(ctx context.Context) (*metrics.Summary, error) {
	resp, err := a.http.doRequest(ctx, http.MethodGet, "/api/metrics", nil)
	if err != nil {
		return nil, err
	}

	var summary metrics.Summary
	if err := a.http.parseResponse(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SaveToken persists the current token for future invocations.
func (a *App) SaveToken() error {
	if a.http.token == "" {
		return fmt.Errorf("no token to save")
	}
	if err := os.MkdirAll(filepath.Dir(a.config.TokenPath), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(a.config.TokenPath, []byte(a.http.token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// ClearToken forgets the saved token. A missing file is not an error.
func (a *App) ClearToken() error {
	a.http.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

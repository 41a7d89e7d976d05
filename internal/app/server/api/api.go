// HTTP surface of the dashboard service:
//
//	POST /auth/login               # username/password -> token + cookie (public)
//	POST /auth/logout              # expire the cookie (public)
//	POST /api/sync/orders          # pull orders from the SaaS feed (admin)
//	POST /api/sync/stripe          # pull payments from Stripe (admin)
//	POST /api/sync/github          # pull issues from GitHub (admin)
//	POST /api/sync/weather         # pull weather readings (admin)
//	GET  /api/metrics              # aggregates across sources (auth)
//	GET  /api/orders               # synced orders, paged (auth)
//	GET  /api/payments             # synced payments (auth)
//	GET  /api/issues               # synced issues (auth)
//	GET  /api/weather              # weather readings (auth)
//	GET  /api/sync/logs            # recent sync attempts (auth)
//	GET  /external/{orders,customers,events}  # mock SaaS API (public)
//	GET  /api/v1/health            # liveness (public)
package api

import (
	authAPI "syncboard/internal/app/server/api/http/auth"
	externalAPI "syncboard/internal/app/server/api/http/external"
	healthAPI "syncboard/internal/app/server/api/http/health"
	metricsAPI "syncboard/internal/app/server/api/http/metrics"
	"syncboard/internal/app/server/api/http/middleware"
	authMW "syncboard/internal/app/server/api/http/middleware/auth"
	loggerMW "syncboard/internal/app/server/api/http/middleware/logger"
	recordsAPI "syncboard/internal/app/server/api/http/records"
	syncAPI "syncboard/internal/app/server/api/http/sync"
	"syncboard/internal/config"
	"syncboard/internal/domain/board"
	"syncboard/internal/domain/identity"
	"syncboard/internal/domain/metrics"
	"syncboard/internal/domain/source"
	"syncboard/internal/domain/sync"
	"syncboard/internal/domain/token"
	"syncboard/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Auth     *authAPI.Handler
	Sync     *syncAPI.Handler
	Metrics  *metricsAPI.Handler
	Records  *recordsAPI.Handler
	External *externalAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, users identity.Provider, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Syncboard API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
		"cookie": {Type: "apiKey", In: "cookie", Name: authMW.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, users, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Sync.SetupRoutes(API)
	h.Metrics.SetupRoutes(API)
	h.Records.SetupRoutes(API)
	h.External.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, users identity.Provider, log *slog.Logger) *Handlers {
	tokenService := token.NewService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	identityService := identity.NewService(users, log)

	guard := authMW.New(tokenService, log)
	requestLog := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestLog.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	externalHandler := externalAPI.NewHandler(log, middlewares.GetAllAndClear())

	auditRepo := postgres.NewAuditRepository(storage.Pool(), log)
	middlewares.Add(requestLog.Middleware())
	authHandler := authAPI.NewHandler(
		identityService, tokenService, auditRepo, cfg.Auth.TokenTTL, log,
		middlewares.GetAllAndClear())

	syncRepo := postgres.NewSyncRepository(storage.Pool(), log)
	syncService := sync.NewService(
		syncRepo,
		source.NewSaaSAdapter(cfg.Sources.SaaSAPIURL, log),
		source.NewStripeAdapter(cfg.Sources.StripeAPIKey, log),
		source.NewGitHubAdapter(cfg.Sources.GitHubToken, cfg.Sources.GitHubRepo, log),
		source.NewWeatherAdapter(cfg.Sources.OpenWeatherAPIKey, cfg.Sources.WeatherCities, log),
		log,
	)
	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	middlewares.Add(guard.RequireRole(identity.RoleAdmin))
	syncHandler := syncAPI.NewHandler(syncService, log, middlewares.GetAllAndClear())

	metricsRepo := postgres.NewMetricsRepository(storage.Pool(), log)
	metricsService := metrics.NewService(metricsRepo)
	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	metricsHandler := metricsAPI.NewHandler(metricsService, log, middlewares.GetAllAndClear())

	boardRepo := postgres.NewBoardRepository(storage.Pool(), log)
	boardService := board.NewService(boardRepo)
	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	recordsHandler := recordsAPI.NewHandler(boardService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Auth:     authHandler,
		Sync:     syncHandler,
		Metrics:  metricsHandler,
		Records:  recordsHandler,
		External: externalHandler,
	}
}

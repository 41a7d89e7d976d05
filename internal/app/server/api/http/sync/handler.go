package sync

import (
	"context"
	"net/http"

	"syncboard/internal/app/server/api/http/middleware/auth"
	"syncboard/internal/domain/sync"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.syncOrdersOp(), h.syncOrders)
	huma.Register(api, h.syncStripeOp(), h.syncStripe)
	huma.Register(api, h.syncGitHubOp(), h.syncGitHub)
	huma.Register(api, h.syncWeatherOp(), h.syncWeather)
}

func (h *Handler) syncOrders(ctx context.Context, _ *syncInput) (*syncOutput, error) {
	return h.respond(ctx, h.service.SyncOrders)
}

func (h *Handler) syncStripe(ctx context.Context, _ *syncInput) (*syncOutput, error) {
	return h.respond(ctx, h.service.SyncPayments)
}

func (h *Handler) syncGitHub(ctx context.Context, _ *syncInput) (*syncOutput, error) {
	return h.respond(ctx, h.service.SyncIssues)
}

func (h *Handler) syncWeather(ctx context.Context, _ *syncInput) (*syncOutput, error) {
	return h.respond(ctx, h.service.SyncWeather)
}

func (h *Handler) respond(ctx context.Context, run func(context.Context, string) (*sync.Outcome, error)) (*syncOutput, error) {
	actor := ""
	if claims, ok := auth.GetClaims(ctx); ok {
		actor = claims.Subject
	}

	outcome, err := run(ctx, actor)
	if err != nil {
		h.log.Error("sync failed", "actor", actor, "error", err)
		return &syncOutput{
			Status: http.StatusInternalServerError,
			Body:   SyncResponse{Error: "Sync failed"},
		}, nil
	}

	return &syncOutput{
		Status: http.StatusOK,
		Body: SyncResponse{
			Success: true,
			Synced:  outcome.Synced,
			Source:  outcome.Source,
		},
	}, nil
}

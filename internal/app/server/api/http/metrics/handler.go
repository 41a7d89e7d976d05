package metrics

import (
	"context"
	"net/http"

	"syncboard/internal/domain/metrics"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    metrics.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service metrics.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getMetricsOp(), h.getMetrics)
}

func (h *Handler) getMetrics(ctx context.Context, _ *getInput) (*getOutput, error) {
	summary, err := h.service.Collect(ctx)
	if err != nil {
		h.log.Error("failed to collect metrics", "error", err)
		return &getOutput{
			Status: http.StatusInternalServerError,
			Body:   Response{Error: "Internal server error"},
		}, nil
	}

	return &getOutput{
		Status: http.StatusOK,
		Body:   Response{Summary: *summary},
	}, nil
}

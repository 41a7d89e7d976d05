package records

import (
	"context"
	"net/http"

	"syncboard/internal/domain/board"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    board.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service board.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOrdersOp(), h.listOrders)
	huma.Register(api, h.listPaymentsOp(), h.listPayments)
	huma.Register(api, h.listIssuesOp(), h.listIssues)
	huma.Register(api, h.listWeatherOp(), h.listWeather)
	huma.Register(api, h.listSyncLogsOp(), h.listSyncLogs)
}

func (h *Handler) listOrders(ctx context.Context, input *listOrdersInput) (*listOrdersOutput, error) {
	page, err := h.service.Orders(ctx, input.Status, input.Page)
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		return &listOrdersOutput{
			Status: http.StatusInternalServerError,
			Body:   OrdersResponse{Error: "Internal server error"},
		}, nil
	}

	return &listOrdersOutput{
		Status: http.StatusOK,
		Body:   OrdersResponse{OrdersPage: *page},
	}, nil
}

func (h *Handler) listPayments(ctx context.Context, _ *listPaymentsInput) (*listPaymentsOutput, error) {
	payments, err := h.service.Payments(ctx)
	if err != nil {
		h.log.Error("failed to list payments", "error", err)
		return &listPaymentsOutput{
			Status: http.StatusInternalServerError,
			Body:   PaymentsResponse{Error: "Internal server error"},
		}, nil
	}

	return &listPaymentsOutput{
		Status: http.StatusOK,
		Body:   PaymentsResponse{Payments: payments},
	}, nil
}

func (h *Handler) listIssues(ctx context.Context, _ *listIssuesInput) (*listIssuesOutput, error) {
	issues, err := h.service.Issues(ctx)
	if err != nil {
		h.log.Error("failed to list issues", "error", err)
		return &listIssuesOutput{
			Status: http.StatusInternalServerError,
			Body:   IssuesResponse{Error: "Internal server error"},
		}, nil
	}

	return &listIssuesOutput{
		Status: http.StatusOK,
		Body:   IssuesResponse{Issues: issues},
	}, nil
}

func (h *Handler) listWeather(ctx context.Context, _ *listWeatherInput) (*listWeatherOutput, error) {
	readings, err := h.service.Weather(ctx)
	if err != nil {
		h.log.Error("failed to list weather readings", "error", err)
		return &listWeatherOutput{
			Status: http.StatusInternalServerError,
			Body:   WeatherResponse{Error: "Internal server error"},
		}, nil
	}

	return &listWeatherOutput{
		Status: http.StatusOK,
		Body:   WeatherResponse{Readings: readings},
	}, nil
}

func (h *Handler) listSyncLogs(ctx context.Context, _ *listSyncLogsInput) (*listSyncLogsOutput, error) {
	logs, err := h.service.SyncLogs(ctx)
	if err != nil {
		h.log.Error("failed to list sync logs", "error", err)
		return &listSyncLogsOutput{
			Status: http.StatusInternalServerError,
			Body:   SyncLogsResponse{Error: "Internal server error"},
		}, nil
	}

	return &listSyncLogsOutput{
		Status: http.StatusOK,
		Body:   SyncLogsResponse{Logs: logs},
	}, nil
}

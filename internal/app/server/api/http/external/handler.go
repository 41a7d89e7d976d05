package external

import (
	"context"
	"time"

	"syncboard/internal/domain/source"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const feedSource = "mock_saas_api"

// Handler serves the public mock SaaS API. It exists so the saas sync
// adapter has a live endpoint to pull from without any external account.
type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.ordersOp(), h.orders)
	huma.Register(api, h.customersOp(), h.customers)
	huma.Register(api, h.eventsOp(), h.events)
}

func (h *Handler) orders(_ context.Context, _ *feedInput) (*ordersOutput, error) {
	generated := source.GenerateOrders(orderCount)

	data := make([]orderDTO, 0, len(generated))
	for _, o := range generated {
		data = append(data, orderDTO{
			ID:           o.ExternalID,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			Amount:       o.Amount,
			CreatedAt:    o.CreatedAt,
		})
	}

	return &ordersOutput{
		Body: OrdersResponse{
			Data:      data,
			Source:    feedSource,
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

func (h *Handler) customers(_ context.Context, _ *feedInput) (*customersOutput, error) {
	return &customersOutput{
		Body: CustomersResponse{
			Data:      source.GenerateCustomers(customerCount),
			Source:    feedSource,
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

func (h *Handler) events(_ context.Context, _ *feedInput) (*eventsOutput, error) {
	return &eventsOutput{
		Body: EventsResponse{
			Data:      source.GenerateEvents(eventCount),
			Source:    feedSource,
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

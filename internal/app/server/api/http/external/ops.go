package external

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) ordersOp() huma.Operation {
	return huma.Operation{
		OperationID: "external-orders",
		Method:      http.MethodGet,
		Path:        "/external/orders",
		Summary:     "Mock SaaS orders feed",
		Description: "Public endpoint simulating a third-party orders API",
		Tags:        []string{"external"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) customersOp() huma.Operation {
	return huma.Operation{
		OperationID: "external-customers",
		Method:      http.MethodGet,
		Path:        "/external/customers",
		Summary:     "Mock SaaS customers feed",
		Tags:        []string{"external"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) eventsOp() huma.Operation {
	return huma.Operation{
		OperationID: "external-events",
		Method:      http.MethodGet,
		Path:        "/external/events",
		Summary:     "Mock SaaS events feed",
		Tags:        []string{"external"},
		Middlewares: h.middleware,
	}
}

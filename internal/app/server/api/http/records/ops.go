package records

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOrdersOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list-orders",
		Method:      http.MethodGet,
		Path:        "/api/orders",
		Summary:     "List synced orders",
		Description: "Newest first, 20 per page, optionally narrowed by status",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listPaymentsOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list-payments",
		Method:      http.MethodGet,
		Path:        "/api/payments",
		Summary:     "List synced payments",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listIssuesOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list-issues",
		Method:      http.MethodGet,
		Path:        "/api/issues",
		Summary:     "List synced issues",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listWeatherOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list-weather",
		Method:      http.MethodGet,
		Path:        "/api/weather",
		Summary:     "List weather readings",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listSyncLogsOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list-sync-logs",
		Method:      http.MethodGet,
		Path:        "/api/sync/logs",
		Summary:     "List recent sync attempts",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) syncOrdersOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-orders",
		Method:      http.MethodPost,
		Path:        "/api/sync/orders",
		Summary:     "Pull orders from the SaaS API",
		Description: "Fetches a batch of orders and inserts the ones not seen before",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) syncStripeOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-stripe",
		Method:      http.MethodPost,
		Path:        "/api/sync/stripe",
		Summary:     "Pull payments from Stripe",
		Description: "Fetches recent charges and inserts the ones not seen before",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) syncGitHubOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-github",
		Method:      http.MethodPost,
		Path:        "/api/sync/github",
		Summary:     "Pull issues from GitHub",
		Description: "Fetches issues for the configured repository and inserts new ones",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) syncWeatherOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-weather",
		Method:      http.MethodPost,
		Path:        "/api/sync/weather",
		Summary:     "Pull weather readings",
		Description: "Fetches one reading per configured city; readings are always appended",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

package metrics

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getMetricsOp() huma.Operation {
	return huma.Operation{
		OperationID: "metrics-get",
		Method:      http.MethodGet,
		Path:        "/api/metrics",
		Summary:     "Aggregate metrics across synced sources",
		Tags:        []string{"metrics"},
		Middlewares: h.middleware,
	}
}

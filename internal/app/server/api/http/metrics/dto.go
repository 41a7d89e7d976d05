package metrics

import "syncboard/internal/domain/metrics"

type getInput struct{}

type getOutput struct {
	Status int
	Body   Response
}

type Response struct {
	metrics.Summary
	Error string `json:"error,omitempty"`
}

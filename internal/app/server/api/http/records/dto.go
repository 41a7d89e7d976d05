package records

import "syncboard/internal/domain/board"

type listOrdersInput struct {
	Status string `query:"status" required:"false" doc:"Filter by order status"`
	Page   int    `query:"page" minimum:"1" default:"1" required:"false"`
}

type listOrdersOutput struct {
	Status int
	Body   OrdersResponse
}

type OrdersResponse struct {
	board.OrdersPage
	Error string `json:"error,omitempty"`
}

type listPaymentsInput struct{}

type listPaymentsOutput struct {
	Status int
	Body   PaymentsResponse
}

type PaymentsResponse struct {
	Payments []board.PaymentRow `json:"payments"`
	Error    string             `json:"error,omitempty"`
}

type listIssuesInput struct{}

type listIssuesOutput struct {
	Status int
	Body   IssuesResponse
}

type IssuesResponse struct {
	Issues []board.IssueRow `json:"issues"`
	Error  string           `json:"error,omitempty"`
}

type listWeatherInput struct{}

type listWeatherOutput struct {
	Status int
	Body   WeatherResponse
}

type WeatherResponse struct {
	Readings []board.WeatherRow `json:"readings"`
	Error    string             `json:"error,omitempty"`
}

type listSyncLogsInput struct{}

type listSyncLogsOutput struct {
	Status int
	Body   SyncLogsResponse
}

type SyncLogsResponse struct {
	Logs  []board.SyncLogRow `json:"logs"`
	Error string             `json:"error,omitempty"`
}

package metrics

// Summary is the aggregate view returned by GET /api/metrics.
type Summary struct {
	Orders  OrderStats   `json:"orders"`
	Stripe  PaymentStats `json:"stripe"`
	GitHub  IssueStats   `json:"github"`
	Weather WeatherStats `json:"weather"`
}

type OrderStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

type PaymentStats struct {
	Total  int     `json:"total"`
	Volume float64 `json:"volume"`
}

type IssueStats struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

type WeatherStats struct {
	Cities   int `json:"cities"`
	Readings int `json:"readings"`
}

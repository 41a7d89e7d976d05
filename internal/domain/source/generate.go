package source

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Synthetic data pools. Values mirror what the real providers return
// closely enough for the dashboard to look plausible.
var (
	customerNames = []string{
		"Acme Corp", "TechStart Inc", "Global Solutions", "InnovateTech",
		"DataFlow Systems", "CloudNine Ltd", "ByteWise Solutions", "NextGen Dynamics",
		"Alpha Industries", "Quantum Labs", "Cyber Solutions", "Digital Frontier",
		"Smart Systems", "Future Tech", "Pioneer Enterprises", "Velocity Corp",
	}

	eventTypes = []string{
		"user.created", "user.updated", "order.placed", "order.completed",
		"payment.received", "subscription.renewed", "account.upgraded", "support.ticket.opened",
	}

	issueTitles = []string{
		"Bug: Component not rendering correctly",
		"Feature request: Add dark mode support",
		"Performance issue with large datasets",
		"Documentation update needed",
		"Refactor: Improve code organization",
		"Fix: Memory leak in event handler",
		"Add unit tests for new module",
		"Update dependencies to latest versions",
	}

	issueAuthors = []string{"developer1", "contributor42", "maintainer", "user123", "coder99"}
	issueRepos   = []string{"facebook/react", "vercel/next.js", "microsoft/vscode"}
	issueLabels  = []string{"bug", "enhancement", "documentation", "help wanted"}

	paymentEmails = []string{
		"customer@example.com", "buyer@company.com", "user@business.org", "client@startup.io",
	}

	weatherDescriptions = []string{
		"clear sky", "few clouds", "scattered clouds", "light rain", "sunny", "overcast",
	}
)

// weighted picks one of choices; weights must sum to 1.
func weighted(choices []string, weights []float64) string {
	r := rand.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}

// GenerateOrders produces n orders with sequential external ids starting
// at ord_10000, so repeated generations overlap and exercise dedup.
func GenerateOrders(n int) []Order {
	statuses := []string{"pending", "completed", "processing", "cancelled"}
	weights := []float64{0.15, 0.60, 0.15, 0.10}

	orders := make([]Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, Order{
			ExternalID:   fmt.Sprintf("ord_%d", 10000+i),
			CustomerName: pick(customerNames),
			Status:       weighted(statuses, weights),
			Amount:       round2(99.99 + rand.Float64()*(9999.99-99.99)),
			CreatedAt:    time.Now().UTC().AddDate(0, 0, -rand.IntN(91)),
		})
	}
	return orders
}

func GeneratePayments(n int) []Payment {
	statuses := []string{"succeeded", "pending", "failed"}
	weights := []float64{0.8, 0.15, 0.05}

	payments := make([]Payment, 0, n)
	for i := 0; i < n; i++ {
		payments = append(payments, Payment{
			PaymentID:     fmt.Sprintf("ch_mock_%d", 100000+i),
			Amount:        round2(10 + rand.Float64()*490),
			Currency:      "USD",
			Status:        weighted(statuses, weights),
			CustomerEmail: pick(paymentEmails),
			Description:   fmt.Sprintf("Payment for order #%d", 1000+rand.IntN(9000)),
		})
	}
	return payments
}

func GenerateIssues(n int) []Issue {
	issues := make([]Issue, 0, n)
	for i := 0; i < n; i++ {
		issues = append(issues, Issue{
			IssueID:    int64(50000 + i),
			Title:      fmt.Sprintf("%s #%d", pick(issueTitles), i+1),
			State:      pick([]string{"open", "closed"}),
			Author:     pick(issueAuthors),
			Repository: pick(issueRepos),
			Labels:     pick(issueLabels),
		})
	}
	return issues
}

func GenerateWeather(cities []string) []WeatherReading {
	readings := make([]WeatherReading, 0, len(cities))
	for _, city := range cities {
		readings = append(readings, WeatherReading{
			City:        city,
			Temperature: round1(-5 + rand.Float64()*40),
			FeelsLike:   round1(-8 + rand.Float64()*46),
			Humidity:    30 + rand.IntN(61),
			Description: pick(weatherDescriptions),
			WindSpeed:   round1(rand.Float64() * 20),
		})
	}
	return readings
}

func GenerateCustomers(n int) []Customer {
	customers := make([]Customer, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, Customer{
			ExternalID: fmt.Sprintf("cust_%d", 1000+i),
			Name:       fmt.Sprintf("%s #%d", pick(customerNames), i+1),
			Email:      fmt.Sprintf("contact%d@company%d.com", i+1, i+1),
			Company:    pick(customerNames),
			CreatedAt:  time.Now().UTC().AddDate(0, 0, -(1 + rand.IntN(365))),
		})
	}
	return customers
}

func GenerateEvents(n int) []Event {
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		eventType := pick(eventTypes)
		events = append(events, Event{
			ExternalID:  fmt.Sprintf("evt_%d", 20000+i),
			Type:        eventType,
			Description: fmt.Sprintf("Event %s triggered by system", eventType),
			CreatedAt:   time.Now().UTC().Add(-time.Duration(rand.IntN(169)) * time.Hour),
		})
	}
	return events
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) OrderStats(ctx context.Context) (OrderStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(OrderStats), args.Error(1)
}

func (m *MockRepository) PaymentStats(ctx context.Context) (PaymentStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(PaymentStats), args.Error(1)
}

func (m *MockRepository) IssueStats(ctx context.Context) (IssueStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(IssueStats), args.Error(1)
}

func (m *MockRepository) WeatherStats(ctx context.Context) (WeatherStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(WeatherStats), args.Error(1)
}

func TestService_Collect(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("OrderStats", ctx).Return(OrderStats{Total: 50, Pending: 12, Completed: 30, Revenue: 1234.5678}, nil)
	repo.On("PaymentStats", ctx).Return(PaymentStats{Total: 25, Volume: 999.999}, nil)
	repo.On("IssueStats", ctx).Return(IssueStats{Total: 25, Open: 14}, nil)
	repo.On("WeatherStats", ctx).Return(WeatherStats{Cities: 5, Readings: 10}, nil)

	got, err := NewService(repo).Collect(ctx)

	require.NoError(t, err)
	assert.Equal(t, 50, got.Orders.Total)
	assert.Equal(t, 1234.57, got.Orders.Revenue)
	assert.Equal(t, 1000.0, got.Stripe.Volume)
	assert.Equal(t, 14, got.GitHub.Open)
	assert.Equal(t, 5, got.Weather.Cities)
	repo.AssertExpectations(t)
}

func TestService_Collect_EmptyStore(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("OrderStats", ctx).Return(OrderStats{}, nil)
	repo.On("PaymentStats", ctx).Return(PaymentStats{}, nil)
	repo.On("IssueStats", ctx).Return(IssueStats{}, nil)
	repo.On("WeatherStats", ctx).Return(WeatherStats{}, nil)

	got, err := NewService(repo).Collect(ctx)

	require.NoError(t, err)
	assert.Equal(t, &Summary{}, got)
}

func TestService_Collect_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("OrderStats", ctx).Return(OrderStats{}, errors.New("connection refused"))

	_, err := NewService(repo).Collect(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order stats")
}

package board

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

func (m *MockRepository) Orders(ctx context.Context, status string, limit, offset int) ([]OrderRow, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]OrderRow), args.Error(1)
}

func (m *MockRepository) CountOrders(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Payments(ctx context.Context, limit int) ([]PaymentRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]PaymentRow), args.Error(1)
}

func (m *MockRepository) Issues(ctx context.Context, limit int) ([]IssueRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]IssueRow), args.Error(1)
}

func (m *MockRepository) Weather(ctx context.Context) ([]WeatherRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]WeatherRow), args.Error(1)
}

func (m *MockRepository) SyncLogs(ctx context.Context, limit int) ([]SyncLogRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]SyncLogRow), args.Error(1)
}

func TestService_Orders_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int
		wantPage       int
		wantTotalPages int
		wantOffset     int
	}{
		{name: "first page", page: 1, total: 45, wantPage: 1, wantTotalPages: 3, wantOffset: 0},
		{name: "middle page", page: 2, total: 45, wantPage: 2, wantTotalPages: 3, wantOffset: 20},
		{name: "page below one clamps", page: 0, total: 45, wantPage: 1, wantTotalPages: 3, wantOffset: 0},
		{name: "empty store", page: 1, total: 0, wantPage: 1, wantTotalPages: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			ctx := context.Background()
			repo.On("CountOrders", ctx, "").Return(tt.total, nil)
			repo.On("Orders", ctx, "", OrdersPerPage, tt.wantOffset).Return([]OrderRow{}, nil)

			got, err := NewService(repo).Orders(ctx, "", tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantTotalPages, got.TotalPages)
			assert.Equal(t, tt.total, got.Total)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Orders_StatusFilter(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	rows := []OrderRow{{ExternalID: "ord_10001", Status: "pending"}}
	repo.On("CountOrders", ctx, "pending").Return(1, nil)
	repo.On("Orders", ctx, "pending", OrdersPerPage, 0).Return(rows, nil)

	got, err := NewService(repo).Orders(ctx, "pending", 1)

	require.NoError(t, err)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "pending", got.Orders[0].Status)
	repo.AssertExpectations(t)
}

func TestService_Orders_CountError(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("CountOrders", ctx, "").Return(0, errors.New("connection refused"))

	_, err := NewService(repo).Orders(ctx, "", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count orders")
}

func TestService_Payments_UsesListLimit(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("Payments", ctx, ListLimit).Return([]PaymentRow{{PaymentID: "ch_1"}}, nil)

	got, err := NewService(repo).Payments(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestService_SyncLogs(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("SyncLogs", ctx, ListLimit).Return([]SyncLogRow{
		{Source: "stripe", RecordsSynced: 25, Status: "success"},
	}, nil)

	got, err := NewService(repo).SyncLogs(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "stripe", got[0].Source)
}

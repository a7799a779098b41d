package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/order/domain"
)

// stubOrderRepository serves canned orders so tests control timestamps
type stubOrderRepository struct {
	orders []domain.Order
}

func (r *stubOrderRepository) FindByID(id uint) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepository) FindAll() ([]domain.Order, error) {
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *stubOrderRepository) FindByUserID(userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepository) FindByStatus(status string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepository) Create(order *domain.Order) error { return nil }
func (r *stubOrderRepository) Update(order *domain.Order) error { return nil }
func (r *stubOrderRepository) Delete(id uint) error             { return nil }

func ordersFixture() *stubOrderRepository {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return &stubOrderRepository{orders: []domain.Order{
		{ID: 1, UserID: "user-1", Status: domain.StatusPending, Total: 1000, CreatedAt: base},
		{ID: 2, UserID: "user-2", Status: domain.StatusDelivered, Total: 2500, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 3, UserID: "user-1", Status: domain.StatusCancelled, Total: 700, CreatedAt: base.AddDate(0, 0, 7)},
		{ID: 4, UserID: "user-3", Status: domain.StatusShipped, Total: 4200, CreatedAt: base.AddDate(0, 0, 10)},
	}}
}

func TestListOrders_NewestFirst(t *testing.T) {
	handler := NewListOrdersHandler(ordersFixture())

	orders, err := handler.Handle(ListOrdersQuery{})
	require.NoError(t, err)

	require.Len(t, orders, 4)
	assert.Equal(t, uint(4), orders[0].ID)
	assert.Equal(t, uint(3), orders[1].ID)
	assert.Equal(t, uint(2), orders[2].ID)
	assert.Equal(t, uint(1), orders[3].ID)
}

func TestListOrders_ByUser(t *testing.T) {
	handler := NewListOrdersHandler(ordersFixture())

	orders, err := handler.Handle(ListOrdersQuery{UserID: "user-1"})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, uint(3), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)
}

func TestListOrders_ByStatus(t *testing.T) {
	handler := NewListOrdersHandler(ordersFixture())

	orders, err := handler.Handle(ListOrdersQuery{Status: domain.StatusShipped})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, uint(4), orders[0].ID)
}

func TestListOrders_DateRange(t *testing.T) {
	handler := NewListOrdersHandler(ordersFixture())
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	orders, err := handler.Handle(ListOrdersQuery{
		From: base.AddDate(0, 0, 1),
		To:   base.AddDate(0, 0, 8),
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, uint(3), orders[0].ID)
	assert.Equal(t, uint(2), orders[1].ID)
}

func TestListOrders_Limit(t *testing.T) {
	handler := NewListOrdersHandler(ordersFixture())

	orders, err := handler.Handle(ListOrdersQuery{Limit: 2})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, uint(4), orders[0].ID)
	assert.Equal(t, uint(3), orders[1].ID)
}

func TestGetOrder(t *testing.T) {
	handler := NewGetOrderHandler(ordersFixture())

	order, err := handler.Handle(GetOrderQuery{OrderID: 2})
	require.NoError(t, err)
	assert.Equal(t, "user-2", order.UserID)

	_, err = handler.Handle(GetOrderQuery{OrderID: 99})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetStats_RevenueExcludesCancelled(t *testing.T) {
	handler := NewGetStatsHandler(ordersFixture())

	stats, err := handler.Handle()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Shipped)
	assert.Zero(t, stats.Processing)
	assert.Equal(t, 1000.0+2500+4200, stats.TotalRevenue)
}

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/order/domain"
	orderrepository "github.com/alibix/storefront/internal/order/repository"
)

func TestUpdateStatus(t *testing.T) {
	repo := orderrepository.NewMemoryOrderRepository()
	created, err := NewCreateOrderHandler(repo, nil).Handle(context.Background(), validCommand())
	require.NoError(t, err)

	handler := NewUpdateStatusHandler(repo)
	order, err := handler.Handle(UpdateStatusCommand{OrderID: created.ID, Status: domain.StatusShipped})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusShipped, order.Status)
	require.Len(t, order.StatusHistory, 2)
	assert.Equal(t, domain.StatusShipped, order.StatusHistory[1].Status)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, stored.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	handler := NewUpdateStatusHandler(orderrepository.NewMemoryOrderRepository())

	_, err := handler.Handle(UpdateStatusCommand{OrderID: 1, Status: "teleported"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	handler := NewUpdateStatusHandler(orderrepository.NewMemoryOrderRepository())

	_, err := handler.Handle(UpdateStatusCommand{OrderID: 42, Status: domain.StatusShipped})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	repo := orderrepository.NewMemoryOrderRepository()
	created, err := NewCreateOrderHandler(repo, nil).Handle(context.Background(), validCommand())
	require.NoError(t, err)

	handler := NewDeleteOrderHandler(repo)
	require.NoError(t, handler.Handle(DeleteOrderCommand{OrderID: created.ID}))

	_, err = repo.FindByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	assert.ErrorIs(t, handler.Handle(DeleteOrderCommand{OrderID: created.ID}), domain.ErrOrderNotFound)
}

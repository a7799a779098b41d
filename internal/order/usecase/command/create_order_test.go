package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/order/domain"
	orderrepository "github.com/alibix/storefront/internal/order/repository"
)

func validCommand() CreateOrderCommand {
	return CreateOrderCommand{
		UserID: "user-1",
		Items: []domain.LineItem{
			{ProductID: 1, Name: "Sneakers", Price: 1500, Quantity: 1},
			{ProductID: 2, Name: "Shirt", Price: 600, Quantity: 1},
		},
		PaymentMethod:   "card",
		ShippingAddress: "House 12, Street 4, Karachi",
		Phone:           "03001234567",
	}
}

func TestCreateOrder_ComputesTotals(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, 2100.0, order.Subtotal)
	assert.Equal(t, 170.0, order.DeliveryFee)
	assert.Equal(t, 0.0, order.CODFee)
	assert.Equal(t, 2270.0, order.Total)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.NotZero(t, order.ID)
}

func TestCreateOrder_PromoCodeApplied(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	cmd := validCommand()
	cmd.PromoCode = "save10"

	order, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 210.0, order.PromoDiscount)
	assert.Equal(t, 2100.0+170-210, order.Total)
}

func TestCreateOrder_UnknownPromoCodeRejected(t *testing.T) {
	repo := orderrepository.NewMemoryOrderRepository()
	handler := NewCreateOrderHandler(repo, nil)

	cmd := validCommand()
	cmd.PromoCode = "BOGUS50"

	_, err := handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, ErrInvalidPromoCode)

	orders, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_CODFee(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	cmd := validCommand()
	cmd.PaymentMethod = "COD"

	order, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 50.0, order.CODFee)
	assert.Equal(t, 2100.0+170+50, order.Total)
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	tests := []struct {
		name   string
		mutate func(*CreateOrderCommand)
	}{
		{"no items", func(c *CreateOrderCommand) { c.Items = nil }},
		{"no address", func(c *CreateOrderCommand) { c.ShippingAddress = "" }},
		{"no payment method", func(c *CreateOrderCommand) { c.PaymentMethod = "" }},
		{"short phone", func(c *CreateOrderCommand) { c.Phone = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := handler.Handle(context.Background(), cmd)
			assert.ErrorIs(t, err, domain.ErrInvalidOrder)
		})
	}
}

func TestCreateOrder_TrackingNumberFormat(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.TrackingNumber, "AB"))
	assert.Len(t, order.TrackingNumber, 12)
	assert.Equal(t, strings.ToUpper(order.TrackingNumber), order.TrackingNumber)
}

func TestCreateOrder_StatusHistorySeeded(t *testing.T) {
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), nil)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, domain.StatusPending, order.StatusHistory[0].Status)
}

type captureOrderPublisher struct {
	published []*domain.Order
}

func (p *captureOrderPublisher) PublishOrderPlaced(_ context.Context, order *domain.Order) error {
	p.published = append(p.published, order)
	return nil
}

func TestCreateOrder_PublishesEvent(t *testing.T) {
	publisher := &captureOrderPublisher{}
	handler := NewCreateOrderHandler(orderrepository.NewMemoryOrderRepository(), publisher)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, order.ID, publisher.published[0].ID)
}

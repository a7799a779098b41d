//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	"github.com/alibix/storefront/internal/order/delivery/http"
	"github.com/alibix/storefront/internal/order/domain"
	"github.com/alibix/storefront/internal/order/usecase/command"
	"github.com/alibix/storefront/internal/order/usecase/query"
)

// Command Handlers Providers
func ProvideCreateOrderHandler(repo domain.OrderRepository, publisher command.OrderPublisher) *command.CreateOrderHandler {
	return command.NewCreateOrderHandler(repo, publisher)
}

func ProvideUpdateStatusHandler(repo domain.OrderRepository) *command.UpdateStatusHandler {
	return command.NewUpdateStatusHandler(repo)
}

func ProvideDeleteOrderHandler(repo domain.OrderRepository) *command.DeleteOrderHandler {
	return command.NewDeleteOrderHandler(repo)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

func ProvideGetStatsHandler(repo domain.OrderRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

func ProvideResolvePromoHandler() *query.ResolvePromoHandler {
	return query.NewResolvePromoHandler()
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideCreateOrderHandler,
	ProvideUpdateStatusHandler,
	ProvideDeleteOrderHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
	ProvideGetStatsHandler,
	ProvideResolvePromoHandler,
)

var AllHandlersSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeOrderHandler initializes the order HTTP handler with all dependencies
func InitializeOrderHandler(
	repo domain.OrderRepository,
	publisher command.OrderPublisher,
	admin http.Middleware,
) (*http.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewOrderHandler,
	)
	return nil, nil
}

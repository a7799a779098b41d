package kafka

import (
	"context"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/pkg/logger"
)

// NewOrderPlacedHandler returns an event handler that bumps the sold
// counter of every product on a placed order
func NewOrderPlacedHandler(catalog catalogdomain.ProductRepository) EventHandler {
	return func(ctx context.Context, payload []byte) error {
		event, err := DecodeOrderPlaced(payload)
		if err != nil {
			return err
		}

		for _, item := range event.Items {
			if err := catalog.IncrementSold(item.ProductID, item.Quantity); err != nil {
				logger.Warn(ctx).
					Err(err).
					Uint("product_id", item.ProductID).
					Uint("order_id", event.OrderID).
					Msg("Failed to record product sale")
			}
		}
		return nil
	}
}

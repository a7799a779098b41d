package domain

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyCart is returned when an operation needs at least one item
var ErrEmptyCart = errors.New("cart is empty")

// CartItem is a product line inside a shopping cart
type CartItem struct {
	ProductID     uint     `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Quantity      int      `json:"quantity"`
}

// EffectiveUnitPrice returns the discounted price when one is set
func (i CartItem) EffectiveUnitPrice() float64 {
	if i.DiscountPrice != nil && *i.DiscountPrice > 0 && *i.DiscountPrice < i.Price {
		return *i.DiscountPrice
	}
	return i.Price
}

// Cart holds the items of one storefront session
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums line totals using effective unit prices
func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, item := range c.Items {
		subtotal += item.EffectiveUnitPrice() * float64(item.Quantity)
	}
	return subtotal
}

// CartRepository persists carts per session
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Clear(ctx context.Context, sessionID string) error
}

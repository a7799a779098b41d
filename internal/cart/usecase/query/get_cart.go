package query

import (
	"context"

	"github.com/alibix/storefront/internal/cart/domain"
)

// CartView is the cart plus its derived totals
type CartView struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

// GetCartHandler handles cart reads
type GetCartHandler struct {
	repo domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(repo domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{repo: repo}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := h.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}, nil
}

package command

import (
	"context"
	"time"

	cartdomain "github.com/alibix/storefront/internal/cart/domain"
	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
)

// AddItemCommand puts a product in the session cart
type AddItemCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// AddItemHandler handles adding products to a cart
type AddItemHandler struct {
	catalog catalogdomain.ProductRepository
	repo    cartdomain.CartRepository
	now     func() time.Time
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(catalog catalogdomain.ProductRepository, repo cartdomain.CartRepository) *AddItemHandler {
	return &AddItemHandler{catalog: catalog, repo: repo, now: time.Now}
}

// Handle executes the add item command. Adding a product already in
// the cart bumps its quantity instead of creating a second line.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*cartdomain.Cart, error) {
	quantity := cmd.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := h.repo.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == cmd.ProductID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		product, err := h.catalog.FindByID(cmd.ProductID)
		if err != nil {
			return nil, err
		}
		item := cartdomain.CartItem{
			ProductID:     product.ID,
			Name:          product.Name,
			Price:         product.Price,
			DiscountPrice: product.DiscountPrice,
			Quantity:      quantity,
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
		cart.Items = append(cart.Items, item)
	}

	cart.UpdatedAt = h.now()
	if err := h.repo.Save(ctx, cmd.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantityCommand sets the quantity of a cart line
type UpdateQuantityCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// UpdateQuantityHandler handles cart quantity changes
type UpdateQuantityHandler struct {
	repo cartdomain.CartRepository
	now  func() time.Time
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(repo cartdomain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo, now: time.Now}
}

// Handle executes the update quantity command. A quantity of zero or
// less removes the line.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*cartdomain.Cart, error) {
	cart, err := h.repo.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == cmd.ProductID {
			if cmd.Quantity <= 0 {
				continue
			}
			item.Quantity = cmd.Quantity
		}
		items = append(items, item)
	}
	cart.Items = items

	cart.UpdatedAt = h.now()
	if err := h.repo.Save(ctx, cmd.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItemCommand drops a product from the cart
type RemoveItemCommand struct {
	SessionID string
	ProductID uint
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	repo cartdomain.CartRepository
	now  func() time.Time
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo cartdomain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo, now: time.Now}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*cartdomain.Cart, error) {
	cart, err := h.repo.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != cmd.ProductID {
			items = append(items, item)
		}
	}
	cart.Items = items

	cart.UpdatedAt = h.now()
	if err := h.repo.Save(ctx, cmd.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCartHandler empties a session cart
type ClearCartHandler struct {
	repo cartdomain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(repo cartdomain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{repo: repo}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, sessionID string) error {
	return h.repo.Clear(ctx, sessionID)
}

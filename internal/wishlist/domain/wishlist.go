package domain

import "context"

// Wishlist is an ordered set of product IDs saved by a session
type Wishlist struct {
	ProductIDs []uint `json:"product_ids"`
}

// Contains reports whether the product is on the list
func (w *Wishlist) Contains(productID uint) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle adds the product when absent and removes it when present.
// It reports whether the product ended up on the list.
func (w *Wishlist) Toggle(productID uint) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return false
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// WishlistRepository persists wishlists per session
type WishlistRepository interface {
	Load(ctx context.Context, sessionID string) (*Wishlist, error)
	Save(ctx context.Context, sessionID string, list *Wishlist) error
	Clear(ctx context.Context, sessionID string) error
}

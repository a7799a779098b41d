package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alibix/storefront/internal/cart/domain"
	"github.com/alibix/storefront/pkg/kvstore"
	"github.com/alibix/storefront/pkg/logger"
)

const cartKeyPrefix = "alibix_cart:"

// KVCartRepository stores carts as JSON blobs in a key-value store
type KVCartRepository struct {
	store kvstore.Store
}

// NewKVCartRepository creates a new cart repository on top of a key-value store
func NewKVCartRepository(store kvstore.Store) *KVCartRepository {
	return &KVCartRepository{store: store}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// Load returns the session cart, or an empty cart when none is stored.
// A corrupted blob is discarded rather than surfaced.
func (r *KVCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := r.store.Get(ctx, cartKey(sessionID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding corrupted cart data")
		return &domain.Cart{}, nil
	}
	return &cart, nil
}

// Save persists the session cart
func (r *KVCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.store.Set(ctx, cartKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the session cart
func (r *KVCartRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.store.Remove(ctx, cartKey(sessionID)); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

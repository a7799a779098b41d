package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alibix/storefront/internal/wishlist/domain"
	"github.com/alibix/storefront/pkg/kvstore"
	"github.com/alibix/storefront/pkg/logger"
)

const wishlistKeyPrefix = "alibix_wishlist:"

// KVWishlistRepository stores wishlists as JSON blobs in a key-value store
type KVWishlistRepository struct {
	store kvstore.Store
}

// NewKVWishlistRepository creates a new wishlist repository on top of a key-value store
func NewKVWishlistRepository(store kvstore.Store) *KVWishlistRepository {
	return &KVWishlistRepository{store: store}
}

func wishlistKey(sessionID string) string {
	return wishlistKeyPrefix + sessionID
}

// Load returns the session wishlist, or an empty one when none is stored
func (r *KVWishlistRepository) Load(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	raw, err := r.store.Get(ctx, wishlistKey(sessionID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return &domain.Wishlist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var list domain.Wishlist
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		logger.Warn(ctx).Err(err).Str("session_id", sessionID).Msg("Discarding corrupted wishlist data")
		return &domain.Wishlist{}, nil
	}
	return &list, nil
}

// Save persists the session wishlist
func (r *KVWishlistRepository) Save(ctx context.Context, sessionID string, list *domain.Wishlist) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := r.store.Set(ctx, wishlistKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	return nil
}

// Clear removes the session wishlist
func (r *KVWishlistRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.store.Remove(ctx, wishlistKey(sessionID)); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}

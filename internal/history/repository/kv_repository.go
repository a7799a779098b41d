package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alibix/storefront/internal/history/domain"
	"github.com/alibix/storefront/pkg/kvstore"
	"github.com/alibix/storefront/pkg/logger"
)

// Storage key prefixes, scoped per session id
const (
	viewsKeyPrefix    = "alibix_recently_viewed:"
	searchesKeyPrefix = "alibix_search_history:"
	mirrorKeyPrefix   = "alibix_recently_viewed_sync:"
)

// ViewsKey returns the storage key for a session's view history
func ViewsKey(sessionID string) string {
	return viewsKeyPrefix + sessionID
}

// SearchesKey returns the storage key for a session's search history
func SearchesKey(sessionID string) string {
	return searchesKeyPrefix + sessionID
}

// MirrorKey returns the storage key for a session's sync mirror
func MirrorKey(sessionID string) string {
	return mirrorKeyPrefix + sessionID
}

// KVHistoryRepository stores the interaction histories as JSON blobs in
// the persisted key-value store. Corrupted state is treated as empty
// rather than surfaced: history is a non-critical enhancement.
type KVHistoryRepository struct {
	store kvstore.Store
}

// NewKVHistoryRepository creates a history repository over a key-value store
func NewKVHistoryRepository(store kvstore.Store) *KVHistoryRepository {
	return &KVHistoryRepository{store: store}
}

func (r *KVHistoryRepository) Views(ctx context.Context, sessionID string) ([]domain.ViewRecord, error) {
	key := ViewsKey(sessionID)
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load view history: %w", err)
	}

	var stored []domain.ViewRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Corrupted view history, treating as empty")
		return nil, nil
	}

	// Drop entries missing required fields
	views := stored[:0]
	for _, v := range stored {
		if v.Valid() {
			views = append(views, v)
		}
	}
	return views, nil
}

func (r *KVHistoryRepository) SaveViews(ctx context.Context, sessionID string, views []domain.ViewRecord) error {
	data, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("failed to encode view history: %w", err)
	}
	return r.store.Set(ctx, ViewsKey(sessionID), string(data))
}

func (r *KVHistoryRepository) Searches(ctx context.Context, sessionID string) ([]domain.SearchRecord, error) {
	key := SearchesKey(sessionID)
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}

	var searches []domain.SearchRecord
	if err := json.Unmarshal([]byte(raw), &searches); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Corrupted search history, treating as empty")
		return nil, nil
	}
	return searches, nil
}

func (r *KVHistoryRepository) SaveSearches(ctx context.Context, sessionID string, searches []domain.SearchRecord) error {
	data, err := json.Marshal(searches)
	if err != nil {
		return fmt.Errorf("failed to encode search history: %w", err)
	}
	return r.store.Set(ctx, SearchesKey(sessionID), string(data))
}

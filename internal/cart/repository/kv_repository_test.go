package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/cart/domain"
	"github.com/alibix/storefront/pkg/kvstore"
)

func TestLoad_MissingSessionIsEmptyCart(t *testing.T) {
	repo := NewKVCartRepository(kvstore.NewMemoryStore())

	cart, err := repo.Load(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewKVCartRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	in := &domain.Cart{
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Earbuds", Price: 4500, Image: "/i/1.jpg", Quantity: 2},
		},
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, "session-1", in))

	out, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_CorruptedBlobDiscarded(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cartKey("session-1"), "{broken"))

	repo := NewKVCartRepository(store)
	cart, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClear_ToleratesMissingKey(t *testing.T) {
	repo := NewKVCartRepository(kvstore.NewMemoryStore())
	assert.NoError(t, repo.Clear(context.Background(), "never-saved"))
}

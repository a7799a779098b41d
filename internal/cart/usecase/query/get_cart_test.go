package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/cart/domain"
	cartrepository "github.com/alibix/storefront/internal/cart/repository"
	"github.com/alibix/storefront/pkg/kvstore"
)

func TestGetCart(t *testing.T) {
	repo := cartrepository.NewKVCartRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	discounted := 800.0
	cart := &domain.Cart{
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Earbuds", Price: 1000, DiscountPrice: &discounted, Quantity: 2},
			{ProductID: 2, Name: "Watch", Price: 500, Quantity: 3},
		},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, "session-1", cart))

	view, err := NewGetCartHandler(repo).Handle(ctx, "session-1")
	require.NoError(t, err)

	assert.Len(t, view.Items, 2)
	assert.Equal(t, 5, view.ItemCount)
	// Discounted line counts at its discount price
	assert.Equal(t, 800.0*2+500*3, view.Subtotal)
}

func TestGetCart_EmptySession(t *testing.T) {
	repo := cartrepository.NewKVCartRepository(kvstore.NewMemoryStore())

	view, err := NewGetCartHandler(repo).Handle(context.Background(), "fresh")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Zero(t, view.ItemCount)
	assert.Zero(t, view.Subtotal)
}

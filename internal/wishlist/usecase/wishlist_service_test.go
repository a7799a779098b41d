package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	catalogrepository "github.com/alibix/storefront/internal/catalog/repository"
	wishlistrepository "github.com/alibix/storefront/internal/wishlist/repository"
	"github.com/alibix/storefront/pkg/kvstore"
)

const testSession = "session-1"

func newWishlistService(t *testing.T, productCount int) *Service {
	t.Helper()
	products := make([]catalogdomain.Product, 0, productCount)
	for i := 1; i <= productCount; i++ {
		products = append(products, catalogdomain.Product{
			Name:     fmt.Sprintf("Product %d", i),
			Category: "electronics",
			Price:    float64(500 * i),
			Stock:    5,
			Images:   []string{fmt.Sprintf("/images/p%d.jpg", i)},
		})
	}
	catalog := catalogrepository.NewSeededProductRepository(products)
	repo := wishlistrepository.NewKVWishlistRepository(kvstore.NewMemoryStore())
	return NewService(repo, catalog)
}

func TestToggle(t *testing.T) {
	service := newWishlistService(t, 3)
	ctx := context.Background()

	added, err := service.Toggle(ctx, testSession, 2)
	require.NoError(t, err)
	assert.True(t, added)

	saved, err := service.Contains(ctx, testSession, 2)
	require.NoError(t, err)
	assert.True(t, saved)

	added, err = service.Toggle(ctx, testSession, 2)
	require.NoError(t, err)
	assert.False(t, added)

	saved, err = service.Contains(ctx, testSession, 2)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	service := newWishlistService(t, 3)
	ctx := context.Background()

	for _, id := range []uint{3, 1} {
		_, err := service.Toggle(ctx, testSession, id)
		require.NoError(t, err)
	}

	products, err := service.List(ctx, testSession)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Product 3", products[0].Name)
	assert.Equal(t, "Product 1", products[1].Name)
}

func TestList_SkipsUnresolvableProducts(t *testing.T) {
	service := newWishlistService(t, 2)
	ctx := context.Background()

	// 99 never existed in the catalog
	for _, id := range []uint{1, 99} {
		_, err := service.Toggle(ctx, testSession, id)
		require.NoError(t, err)
	}

	products, err := service.List(ctx, testSession)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, uint(1), products[0].ID)
}

func TestClear(t *testing.T) {
	service := newWishlistService(t, 2)
	ctx := context.Background()

	_, err := service.Toggle(ctx, testSession, 1)
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx, testSession))

	products, err := service.List(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWishlists_IsolatedBySession(t *testing.T) {
	service := newWishlistService(t, 2)
	ctx := context.Background()

	_, err := service.Toggle(ctx, "session-a", 1)
	require.NoError(t, err)

	saved, err := service.Contains(ctx, "session-b", 1)
	require.NoError(t, err)
	assert.False(t, saved)
}

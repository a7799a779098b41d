package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/catalog/domain"
)

func catalogFixture() *MemoryProductRepository {
	discounted := 3500.0
	return NewSeededProductRepository([]domain.Product{
		{Name: "Wireless Earbuds", NameUrdu: "وائرلیس ایئربڈز", Category: "electronics", Brand: "SoundMax", Price: 4500, DiscountPrice: &discounted, Stock: 12, Sold: 40, Featured: true},
		{Name: "Smart Watch", Category: "electronics", Brand: "TimeCo", Price: 8900, Stock: 3, Sold: 15},
		{Name: "Cotton Kurta", Category: "clothing", Brand: "Khaadi", Price: 2400, Stock: 30, Sold: 80, IsNew: true},
		{Name: "Leather Wallet", Category: "accessories", Brand: "Hidesign", Price: 1800, Stock: 0, Sold: 5},
	})
}

func TestSeededRepository_AssignsSequentialIDs(t *testing.T) {
	repo := catalogFixture()

	product, err := repo.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Cotton Kurta", product.Name)

	created := &domain.Product{Name: "New Product", Category: "electronics", Price: 100}
	require.NoError(t, repo.Create(created))
	assert.Equal(t, uint(5), created.ID)
}

func TestSearch_MatchesNameDescriptionAndCategory(t *testing.T) {
	repo := catalogFixture()

	byName, err := repo.Search("earbuds")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Wireless Earbuds", byName[0].Name)

	byCategory, err := repo.Search("ELECTRONICS")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	none, err := repo.Search("bicycle")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindRelated_SameCategoryExcludingSelf(t *testing.T) {
	repo := catalogFixture()

	related, err := repo.FindRelated(1, 10)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "Smart Watch", related[0].Name)

	_, err = repo.FindRelated(99, 10)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFindLowStock(t *testing.T) {
	repo := catalogFixture()

	low, err := repo.FindLowStock(5)
	require.NoError(t, err)

	require.Len(t, low, 2)
	assert.Equal(t, "Smart Watch", low[0].Name)
	assert.Equal(t, "Leather Wallet", low[1].Name)
}

func TestFindTopSelling(t *testing.T) {
	repo := catalogFixture()

	top, err := repo.FindTopSelling(2)
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "Cotton Kurta", top[0].Name)
	assert.Equal(t, "Wireless Earbuds", top[1].Name)
}

func TestDiscountLifecycle(t *testing.T) {
	repo := catalogFixture()

	require.NoError(t, repo.ApplyDiscount(2, 7500))
	product, err := repo.FindByID(2)
	require.NoError(t, err)
	require.NotNil(t, product.DiscountPrice)
	assert.Equal(t, 7500.0, *product.DiscountPrice)
	assert.True(t, product.IsDiscounted())

	require.NoError(t, repo.RemoveDiscount(2))
	product, err = repo.FindByID(2)
	require.NoError(t, err)
	assert.Nil(t, product.DiscountPrice)
}

func TestIncrementSold(t *testing.T) {
	repo := catalogFixture()

	require.NoError(t, repo.IncrementSold(1, 3))
	product, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 43, product.Sold)

	assert.ErrorIs(t, repo.IncrementSold(99, 1), domain.ErrProductNotFound)
}

func TestCategoryRepository(t *testing.T) {
	repo := NewSeededCategoryRepository([]domain.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Clothing", Slug: "clothing"},
	})

	bySlug, err := repo.FindBySlug("clothing")
	require.NoError(t, err)
	assert.Equal(t, uint(2), bySlug.ID)

	_, err = repo.FindBySlug("missing")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.NoError(t, repo.Delete(1))
	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Clothing", all[0].Name)
}

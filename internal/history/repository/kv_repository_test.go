package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/history/domain"
	"github.com/alibix/storefront/pkg/kvstore"
)

func TestViews_MissingKeyIsEmpty(t *testing.T) {
	repo := NewKVHistoryRepository(kvstore.NewMemoryStore())

	views, err := repo.Views(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestViews_RoundTrip(t *testing.T) {
	repo := NewKVHistoryRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	in := []domain.ViewRecord{
		{ProductID: 1, Name: "Earbuds", Category: "electronics", Price: 4500, Image: "/images/e.jpg", ViewedAt: 1700000000000, ViewCount: 2},
		{ProductID: 2, Name: "Watch", Category: "electronics", Price: 8900, Image: "/images/w.jpg", ViewedAt: 1700000001000, ViewCount: 1},
	}
	require.NoError(t, repo.SaveViews(ctx, "session-1", in))

	out, err := repo.Views(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestViews_ScopedPerSession(t *testing.T) {
	repo := NewKVHistoryRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	alpha := []domain.ViewRecord{
		{ProductID: 1, Name: "Earbuds", Image: "/images/e.jpg", ViewCount: 1},
	}
	beta := []domain.ViewRecord{
		{ProductID: 2, Name: "Watch", Image: "/images/w.jpg", ViewCount: 1},
		{ProductID: 3, Name: "Shoes", Image: "/images/s.jpg", ViewCount: 2},
	}
	require.NoError(t, repo.SaveViews(ctx, "session-a", alpha))
	require.NoError(t, repo.SaveViews(ctx, "session-b", beta))

	viewsA, err := repo.Views(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, alpha, viewsA)

	viewsB, err := repo.Views(ctx, "session-b")
	require.NoError(t, err)
	assert.Equal(t, beta, viewsB)

	viewsC, err := repo.Views(ctx, "session-c")
	require.NoError(t, err)
	assert.Empty(t, viewsC)
}

func TestViews_CorruptedBlobTreatedAsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, ViewsKey("session-1"), "{not json"))

	repo := NewKVHistoryRepository(store)
	views, err := repo.Views(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestViews_DropsInvalidEntries(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	// Entries missing id, name or image are stale garbage
	blob := `[
		{"product_id":1,"name":"Earbuds","image":"/images/e.jpg","price":4500},
		{"product_id":0,"name":"Ghost","image":"/images/g.jpg"},
		{"product_id":3,"name":"","image":"/images/x.jpg"},
		{"product_id":4,"name":"NoImage","image":""}
	]`
	require.NoError(t, store.Set(ctx, ViewsKey("session-1"), blob))

	repo := NewKVHistoryRepository(store)
	views, err := repo.Views(ctx, "session-1")
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, uint(1), views[0].ProductID)
}

func TestSearches_RoundTrip(t *testing.T) {
	repo := NewKVHistoryRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	in := []domain.SearchRecord{
		{Query: "earbuds", Timestamp: 1700000000000, ResultCount: 4, Frequency: 2},
	}
	require.NoError(t, repo.SaveSearches(ctx, "session-1", in))

	out, err := repo.Searches(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSearches_ScopedPerSession(t *testing.T) {
	repo := NewKVHistoryRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SaveSearches(ctx, "session-a", []domain.SearchRecord{
		{Query: "earbuds", ResultCount: 4, Frequency: 1},
	}))

	searches, err := repo.Searches(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, searches)
}

func TestSearches_CorruptedBlobTreatedAsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, SearchesKey("session-1"), "42"))

	repo := NewKVHistoryRepository(store)
	searches, err := repo.Searches(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, searches)
}

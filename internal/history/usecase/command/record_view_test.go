package command

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	catalogrepository "github.com/alibix/storefront/internal/catalog/repository"
	"github.com/alibix/storefront/internal/history/domain"
	historyrepository "github.com/alibix/storefront/internal/history/repository"
	"github.com/alibix/storefront/pkg/kvstore"
)

type captureSyncer struct {
	sessions []string
	enqueued [][]domain.ViewRecord
}

func (s *captureSyncer) Enqueue(sessionID string, views []domain.ViewRecord) {
	s.sessions = append(s.sessions, sessionID)
	s.enqueued = append(s.enqueued, views)
}

func testProducts(n int) []catalogdomain.Product {
	products := make([]catalogdomain.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, catalogdomain.Product{
			Name:     fmt.Sprintf("Product %d", i),
			Category: "electronics",
			Brand:    "TestBrand",
			Price:    float64(1000 * i),
			Stock:    10,
			Images:   []string{fmt.Sprintf("/images/p%d.jpg", i)},
		})
	}
	return products
}

func newViewFixture(t *testing.T, n int) (*RecordViewHandler, domain.HistoryRepository, *captureSyncer) {
	t.Helper()
	catalog := catalogrepository.NewSeededProductRepository(testProducts(n))
	repo := historyrepository.NewKVHistoryRepository(kvstore.NewMemoryStore())
	syncer := &captureSyncer{}
	return NewRecordViewHandler(catalog, repo, syncer), repo, syncer
}

func TestRecordView_AddsSnapshotToFront(t *testing.T) {
	handler, _, _ := newViewFixture(t, 3)
	ctx := context.Background()

	views, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 2})
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, uint(2), views[0].ProductID)
	assert.Equal(t, "Product 2", views[0].Name)
	assert.Equal(t, "electronics", views[0].Category)
	assert.Equal(t, "TestBrand", views[0].Brand)
	assert.Equal(t, 2000.0, views[0].Price)
	assert.Equal(t, "/images/p2.jpg", views[0].Image)
	assert.Equal(t, 1, views[0].ViewCount)
	assert.NotZero(t, views[0].ViewedAt)
}

func TestRecordView_MostRecentFirst(t *testing.T) {
	handler, _, _ := newViewFixture(t, 3)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)
	views, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 2})
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, uint(2), views[0].ProductID)
	assert.Equal(t, uint(1), views[1].ProductID)
}

func TestRecordView_RepeatViewDedupesAndCounts(t *testing.T) {
	handler, _, _ := newViewFixture(t, 3)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 2})
	require.NoError(t, err)
	views, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, uint(1), views[0].ProductID)
	assert.Equal(t, 2, views[0].ViewCount)
	assert.Equal(t, uint(2), views[1].ProductID)
	assert.Equal(t, 1, views[1].ViewCount)
}

func TestRecordView_BoundedAtTwenty(t *testing.T) {
	handler, _, _ := newViewFixture(t, 25)
	ctx := context.Background()

	var views []domain.ViewRecord
	var err error
	for i := 1; i <= 25; i++ {
		views, err = handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: uint(i)})
		require.NoError(t, err)
	}

	require.Len(t, views, domain.MaxViewedProducts)
	assert.Equal(t, uint(25), views[0].ProductID)
	// The five oldest views fell off the end
	assert.Equal(t, uint(6), views[len(views)-1].ProductID)
}

func TestRecordView_SessionsAreIsolated(t *testing.T) {
	handler, repo, syncer := newViewFixture(t, 3)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-a", ProductID: 1})
	require.NoError(t, err)
	viewsB, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-b", ProductID: 2})
	require.NoError(t, err)

	// session-b started from an empty history
	require.Len(t, viewsB, 1)
	assert.Equal(t, uint(2), viewsB[0].ProductID)

	storedA, err := repo.Views(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, storedA, 1)
	assert.Equal(t, uint(1), storedA[0].ProductID)

	assert.Equal(t, []string{"session-a", "session-b"}, syncer.sessions)
}

func TestRecordView_UnknownProductLeavesHistoryUntouched(t *testing.T) {
	handler, repo, _ := newViewFixture(t, 3)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 99})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)

	stored, err := repo.Views(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, uint(1), stored[0].ProductID)
}

func TestRecordView_NotifiesSyncer(t *testing.T) {
	handler, _, syncer := newViewFixture(t, 3)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, RecordViewCommand{SessionID: "session-1", ProductID: 2})
	require.NoError(t, err)

	require.Len(t, syncer.enqueued, 2)
	assert.Len(t, syncer.enqueued[1], 2)
}

func TestRecordView_NilSyncer(t *testing.T) {
	catalog := catalogrepository.NewSeededProductRepository(testProducts(2))
	repo := historyrepository.NewKVHistoryRepository(kvstore.NewMemoryStore())
	handler := NewRecordViewHandler(catalog, repo, nil)

	_, err := handler.Handle(context.Background(), RecordViewCommand{SessionID: "session-1", ProductID: 1})
	assert.NoError(t, err)
}

func TestRecordView_TimestampsFromClock(t *testing.T) {
	handler, _, _ := newViewFixture(t, 2)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return fixed }

	views, err := handler.Handle(context.Background(), RecordViewCommand{SessionID: "session-1", ProductID: 1})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fixed.UnixMilli(), views[0].ViewedAt)
}

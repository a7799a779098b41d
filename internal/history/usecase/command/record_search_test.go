package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibix/storefront/internal/history/domain"
	historyrepository "github.com/alibix/storefront/internal/history/repository"
	"github.com/alibix/storefront/pkg/kvstore"
)

func newSearchFixture(t *testing.T) (*RecordSearchHandler, domain.HistoryRepository) {
	t.Helper()
	repo := historyrepository.NewKVHistoryRepository(kvstore.NewMemoryStore())
	return NewRecordSearchHandler(repo), repo
}

func TestRecordSearch_NormalizesQuery(t *testing.T) {
	handler, _ := newSearchFixture(t)

	searches, err := handler.Handle(context.Background(), RecordSearchCommand{SessionID: "session-1", Query: "  Wireless EARBUDS ", ResultCount: 7})
	require.NoError(t, err)
	require.Len(t, searches, 1)

	assert.Equal(t, "wireless earbuds", searches[0].Query)
	assert.Equal(t, 7, searches[0].ResultCount)
	assert.Equal(t, 1, searches[0].Frequency)
}

func TestRecordSearch_EmptyQueryIsIgnored(t *testing.T) {
	handler, repo := newSearchFixture(t)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: "shoes"})
	require.NoError(t, err)

	searches, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: "   "})
	require.NoError(t, err)
	assert.Len(t, searches, 1)

	stored, err := repo.Searches(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestRecordSearch_RepeatBumpsFrequencyAndMovesToFront(t *testing.T) {
	handler, _ := newSearchFixture(t)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: "earbuds"})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: "watch"})
	require.NoError(t, err)
	searches, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: "Earbuds"})
	require.NoError(t, err)

	require.Len(t, searches, 2)
	assert.Equal(t, "earbuds", searches[0].Query)
	assert.Equal(t, 2, searches[0].Frequency)
	assert.Equal(t, "watch", searches[1].Query)
}

func TestRecordSearch_SessionsAreIsolated(t *testing.T) {
	handler, repo := newSearchFixture(t)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-a", Query: "earbuds"})
	require.NoError(t, err)
	searches, err := handler.Handle(ctx, RecordSearchCommand{SessionID: "session-b", Query: "watch"})
	require.NoError(t, err)

	require.Len(t, searches, 1)
	assert.Equal(t, "watch", searches[0].Query)

	storedA, err := repo.Searches(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, storedA, 1)
	assert.Equal(t, "earbuds", storedA[0].Query)
}

func TestRecordSearch_BoundedAtFifty(t *testing.T) {
	handler, _ := newSearchFixture(t)
	ctx := context.Background()

	var searches []domain.SearchRecord
	var err error
	for i := 1; i <= 55; i++ {
		searches, err = handler.Handle(ctx, RecordSearchCommand{SessionID: "session-1", Query: fmt.Sprintf("query %d", i)})
		require.NoError(t, err)
	}

	require.Len(t, searches, domain.MaxSearchEntries)
	assert.Equal(t, "query 55", searches[0].Query)
	assert.Equal(t, "query 6", searches[len(searches)-1].Query)
}

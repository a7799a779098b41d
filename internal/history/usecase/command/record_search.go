package command

import (
	"context"
	"strings"
	"time"

	"github.com/alibix/storefront/internal/history/domain"
)

// RecordSearchCommand registers one search query and its result count
type RecordSearchCommand struct {
	SessionID   string
	Query       string
	ResultCount int
}

// RecordSearchHandler appends a query to the bounded search history
type RecordSearchHandler struct {
	repo domain.HistoryRepository
	now  func() time.Time
}

// NewRecordSearchHandler creates a new record search handler
func NewRecordSearchHandler(repo domain.HistoryRepository) *RecordSearchHandler {
	return &RecordSearchHandler{repo: repo, now: time.Now}
}

// Handle executes the record search command. Queries are case-folded;
// a repeated query bumps its frequency and moves to the front.
func (h *RecordSearchHandler) Handle(ctx context.Context, cmd RecordSearchCommand) ([]domain.SearchRecord, error) {
	query := strings.ToLower(strings.TrimSpace(cmd.Query))
	if query == "" {
		return h.repo.Searches(ctx, cmd.SessionID)
	}

	searches, err := h.repo.Searches(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	entry := domain.SearchRecord{
		Query:       query,
		Timestamp:   h.now().UnixMilli(),
		ResultCount: cmd.ResultCount,
		Frequency:   1,
	}

	updated := make([]domain.SearchRecord, 0, len(searches)+1)
	updated = append(updated, entry)
	for _, s := range searches {
		if s.Query == query {
			updated[0].Frequency = s.Frequency + 1
			continue
		}
		updated = append(updated, s)
	}

	if len(updated) > domain.MaxSearchEntries {
		updated = updated[:domain.MaxSearchEntries]
	}

	if err := h.repo.SaveSearches(ctx, cmd.SessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

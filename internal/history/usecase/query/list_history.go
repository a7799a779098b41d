package query

import (
	"context"

	"github.com/alibix/storefront/internal/history/domain"
)

// ListViewsHandler returns the recently-viewed list, most recent first
type ListViewsHandler struct {
	repo domain.HistoryRepository
}

// NewListViewsHandler creates a new list views handler
func NewListViewsHandler(repo domain.HistoryRepository) *ListViewsHandler {
	return &ListViewsHandler{repo: repo}
}

// Handle returns the session's sanitized view history
func (h *ListViewsHandler) Handle(ctx context.Context, sessionID string) ([]domain.ViewRecord, error) {
	return h.repo.Views(ctx, sessionID)
}

// ListSearchesHandler returns the search history, most recent first
type ListSearchesHandler struct {
	repo domain.HistoryRepository
}

// NewListSearchesHandler creates a new list searches handler
func NewListSearchesHandler(repo domain.HistoryRepository) *ListSearchesHandler {
	return &ListSearchesHandler{repo: repo}
}

// Handle returns the session's search history
func (h *ListSearchesHandler) Handle(ctx context.Context, sessionID string) ([]domain.SearchRecord, error) {
	return h.repo.Searches(ctx, sessionID)
}

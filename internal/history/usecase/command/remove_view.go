package command

import (
	"context"

	"github.com/alibix/storefront/internal/history/domain"
)

// RemoveViewCommand drops one product from a session's recently-viewed list
type RemoveViewCommand struct {
	SessionID string
	ProductID uint
}

// RemoveViewHandler handles single view removal
type RemoveViewHandler struct {
	repo   domain.HistoryRepository
	syncer domain.Syncer
}

// NewRemoveViewHandler creates a new remove view handler. syncer may be nil.
func NewRemoveViewHandler(repo domain.HistoryRepository, syncer domain.Syncer) *RemoveViewHandler {
	return &RemoveViewHandler{repo: repo, syncer: syncer}
}

// Handle executes the remove view command
func (h *RemoveViewHandler) Handle(ctx context.Context, cmd RemoveViewCommand) ([]domain.ViewRecord, error) {
	views, err := h.repo.Views(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.ViewRecord, 0, len(views))
	for _, v := range views {
		if v.ProductID != cmd.ProductID {
			filtered = append(filtered, v)
		}
	}

	if err := h.repo.SaveViews(ctx, cmd.SessionID, filtered); err != nil {
		return nil, err
	}
	if h.syncer != nil {
		h.syncer.Enqueue(cmd.SessionID, filtered)
	}
	return filtered, nil
}

// ClearViewsHandler empties the recently-viewed list
type ClearViewsHandler struct {
	repo   domain.HistoryRepository
	syncer domain.Syncer
}

// NewClearViewsHandler creates a new clear views handler. syncer may be nil.
func NewClearViewsHandler(repo domain.HistoryRepository, syncer domain.Syncer) *ClearViewsHandler {
	return &ClearViewsHandler{repo: repo, syncer: syncer}
}

// Handle clears the session's stored view list
func (h *ClearViewsHandler) Handle(ctx context.Context, sessionID string) error {
	if err := h.repo.SaveViews(ctx, sessionID, nil); err != nil {
		return err
	}
	if h.syncer != nil {
		h.syncer.Enqueue(sessionID, nil)
	}
	return nil
}

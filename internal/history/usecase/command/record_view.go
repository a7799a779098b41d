package command

import (
	"context"
	"time"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/internal/history/domain"
)

// RecordViewCommand registers one product view for a session
type RecordViewCommand struct {
	SessionID string
	ProductID uint
}

// RecordViewHandler appends a view to the bounded recently-viewed list
type RecordViewHandler struct {
	catalog catalogdomain.ProductRepository
	repo    domain.HistoryRepository
	syncer  domain.Syncer
	now     func() time.Time
}

// NewRecordViewHandler creates a new record view handler. syncer may be nil.
func NewRecordViewHandler(catalog catalogdomain.ProductRepository, repo domain.HistoryRepository, syncer domain.Syncer) *RecordViewHandler {
	return &RecordViewHandler{catalog: catalog, repo: repo, syncer: syncer, now: time.Now}
}

// Handle executes the record view command. An unknown product id fails
// with catalog ErrProductNotFound and leaves the stored list untouched.
func (h *RecordViewHandler) Handle(ctx context.Context, cmd RecordViewCommand) ([]domain.ViewRecord, error) {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	views, err := h.repo.Views(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	entry := domain.ViewRecord{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Brand:     product.Brand,
		Price:     product.Price,
		ViewedAt:  h.now().UnixMilli(),
		ViewCount: 1,
	}
	if len(product.Images) > 0 {
		entry.Image = product.Images[0]
	}

	// Repeat views keep a single entry: carry the count over and move
	// the record to the front.
	updated := make([]domain.ViewRecord, 0, len(views)+1)
	updated = append(updated, entry)
	for _, v := range views {
		if v.ProductID == cmd.ProductID {
			updated[0].ViewCount = v.ViewCount + 1
			continue
		}
		updated = append(updated, v)
	}

	if len(updated) > domain.MaxViewedProducts {
		updated = updated[:domain.MaxViewedProducts]
	}

	if err := h.repo.SaveViews(ctx, cmd.SessionID, updated); err != nil {
		return nil, err
	}

	if h.syncer != nil {
		h.syncer.Enqueue(cmd.SessionID, updated)
	}
	return updated, nil
}

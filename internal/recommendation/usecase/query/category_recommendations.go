package query

import (
	"context"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	historydomain "github.com/alibix/storefront/internal/history/domain"
	"github.com/alibix/storefront/internal/recommendation/domain"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultCategoryLimit = 8

// CategoryRecommendationsQuery asks for the best unviewed products in a category
type CategoryRecommendationsQuery struct {
	SessionID string
	Category  string
	Limit     int
}

// CategoryRecommendationsHandler ranks a category by popularity,
// excluding already-viewed products
type CategoryRecommendationsHandler struct {
	catalog catalogdomain.ProductRepository
	history historydomain.HistoryRepository
}

// NewCategoryRecommendationsHandler creates a new category recommendations handler
func NewCategoryRecommendationsHandler(
	catalog catalogdomain.ProductRepository,
	history historydomain.HistoryRepository,
) *CategoryRecommendationsHandler {
	return &CategoryRecommendationsHandler{catalog: catalog, history: history}
}

// Handle executes the category recommendations query. Failures yield an
// empty list, never an error.
func (h *CategoryRecommendationsHandler) Handle(ctx context.Context, query CategoryRecommendationsQuery) []domain.ScoredProduct {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	products, err := h.catalog.FindByCategory(query.Category)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("category", query.Category).Msg("Category recommendations failed")
		return nil
	}

	viewed := domain.ExcludeSet{}
	if views, err := h.history.Views(ctx, query.SessionID); err == nil {
		for _, v := range views {
			viewed[v.ProductID] = struct{}{}
		}
	} else {
		logger.Warn(ctx).Err(err).Msg("View history unavailable, recommending without exclusions")
	}

	scored := domain.ScoreByCategory(products, viewed)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

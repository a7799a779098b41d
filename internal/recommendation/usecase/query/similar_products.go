package query

import (
	"context"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/internal/recommendation/domain"
	"github.com/alibix/storefront/pkg/logger"
)

const defaultSimilarLimit = 6

// SimilarProductsQuery asks for products similar to a reference product
type SimilarProductsQuery struct {
	ProductID uint
	Limit     int
}

// SimilarProductsHandler scores the catalog against one reference product
type SimilarProductsHandler struct {
	catalog catalogdomain.ProductRepository
}

// NewSimilarProductsHandler creates a new similar products handler
func NewSimilarProductsHandler(catalog catalogdomain.ProductRepository) *SimilarProductsHandler {
	return &SimilarProductsHandler{catalog: catalog}
}

// Handle executes the similar products query. The reference product must
// exist; scoring failures past that point degrade to plain related
// products.
func (h *SimilarProductsHandler) Handle(ctx context.Context, query SimilarProductsQuery) ([]domain.ScoredProduct, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	reference, err := h.catalog.FindByID(query.ProductID)
	if err != nil {
		return nil, err
	}

	products, err := h.catalog.FindAll()
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Similarity scoring failed, falling back to related products")
		return h.fallback(query.ProductID, limit)
	}

	candidates := make([]catalogdomain.Product, 0, len(products))
	for _, p := range products {
		if domain.SimilarCandidate(&p, reference) {
			candidates = append(candidates, p)
		}
	}

	scored := domain.ScoreBySimilarity(candidates, reference, nil)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (h *SimilarProductsHandler) fallback(productID uint, limit int) ([]domain.ScoredProduct, error) {
	related, err := h.catalog.FindRelated(productID, limit)
	if err != nil {
		return nil, nil
	}
	out := make([]domain.ScoredProduct, 0, len(related))
	for _, p := range related {
		out = append(out, domain.ScoredProduct{Product: p})
	}
	return out, nil
}

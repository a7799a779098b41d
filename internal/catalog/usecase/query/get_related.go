package query

import (
	"github.com/alibix/storefront/internal/catalog/domain"
)

const defaultRelatedLimit = 6

// GetRelatedQuery represents the query for products related to one product
type GetRelatedQuery struct {
	ProductID uint
	Limit     int
}

// GetRelatedHandler handles related product lookups
type GetRelatedHandler struct {
	repo domain.ProductRepository
}

// NewGetRelatedHandler creates a new related products handler
func NewGetRelatedHandler(repo domain.ProductRepository) *GetRelatedHandler {
	return &GetRelatedHandler{repo: repo}
}

// Handle executes the related products query
func (h *GetRelatedHandler) Handle(query GetRelatedQuery) ([]domain.Product, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	return h.repo.FindRelated(query.ProductID, limit)
}

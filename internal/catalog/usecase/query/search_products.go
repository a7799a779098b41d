package query

import (
	"fmt"
	"strings"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// SearchProductsQuery represents a catalog text search
type SearchProductsQuery struct {
	Query string
}

// SearchProductsHandler handles catalog searches
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search query
func (h *SearchProductsHandler) Handle(query SearchProductsQuery) ([]domain.Product, error) {
	term := strings.TrimSpace(query.Query)
	if term == "" {
		return nil, nil
	}
	products, err := h.repo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

package query

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// Collection filters supported by ListProductsQuery
const (
	CollectionAll        = ""
	CollectionFeatured   = "featured"
	CollectionNew        = "new"
	CollectionDiscounted = "discounted"
)

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Category   string // optional: filter by category
	Collection string // optional: featured / new / discounted
}

// ListProductsHandler handles list products queries
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	var products []domain.Product
	var err error

	switch {
	case query.Category != "":
		products, err = h.repo.FindByCategory(query.Category)
	case query.Collection == CollectionFeatured:
		products, err = h.repo.FindFeatured()
	case query.Collection == CollectionNew:
		products, err = h.repo.FindNewArrivals()
	case query.Collection == CollectionDiscounted:
		products, err = h.repo.FindDiscounted()
	default:
		products, err = h.repo.FindAll()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

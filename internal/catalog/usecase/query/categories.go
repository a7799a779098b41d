package query

import (
	"github.com/alibix/storefront/internal/catalog/domain"
)

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle returns all categories
func (h *ListCategoriesHandler) Handle() ([]domain.Category, error) {
	return h.repo.FindAll()
}

// GetCategoryQuery resolves a category by id or slug
type GetCategoryQuery struct {
	ID   uint
	Slug string
}

// GetCategoryHandler handles single category lookups
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(query GetCategoryQuery) (*domain.Category, error) {
	if query.Slug != "" {
		return h.repo.FindBySlug(query.Slug)
	}
	return h.repo.FindByID(query.ID)
}

package command

import (
	"fmt"
	"strings"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// SaveCategoryCommand creates or updates a category (ID zero == create)
type SaveCategoryCommand struct {
	ID       uint
	Name     string
	NameUrdu string
	Slug     string
	Image    string
}

// SaveCategoryHandler handles category create/update
type SaveCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewSaveCategoryHandler creates a new save category handler
func NewSaveCategoryHandler(repo domain.CategoryRepository) *SaveCategoryHandler {
	return &SaveCategoryHandler{repo: repo}
}

// Handle executes the save category command
func (h *SaveCategoryHandler) Handle(cmd SaveCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	slug := cmd.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(cmd.Name, " ", "-"))
	}

	category := &domain.Category{
		ID:       cmd.ID,
		Name:     cmd.Name,
		NameUrdu: cmd.NameUrdu,
		Slug:     slug,
		Image:    cmd.Image,
	}

	if cmd.ID == 0 {
		if err := h.repo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		return category, nil
	}
	if err := h.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(cmd DeleteCategoryCommand) error {
	return h.repo.Delete(cmd.ID)
}

package command

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID            uint
	Name          string
	NameUrdu      string
	Description   string
	Category      string
	Brand         string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Featured      bool
	IsNew         bool
	Images        []string
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if cmd.DiscountPrice != nil && *cmd.DiscountPrice >= cmd.Price {
		return nil, fmt.Errorf("discount price must be below regular price")
	}

	existing, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = cmd.Name
	existing.NameUrdu = cmd.NameUrdu
	existing.Description = cmd.Description
	existing.Category = cmd.Category
	existing.Brand = cmd.Brand
	existing.Price = cmd.Price
	existing.DiscountPrice = cmd.DiscountPrice
	existing.Stock = cmd.Stock
	existing.Featured = cmd.Featured
	existing.IsNew = cmd.IsNew
	existing.Images = cmd.Images

	if err := h.repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return existing, nil
}

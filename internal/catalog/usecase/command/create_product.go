package command

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if cmd.DiscountPrice != nil && *cmd.DiscountPrice >= cmd.Price {
		return nil, fmt.Errorf("discount price must be below regular price")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		NameUrdu:      cmd.NameUrdu,
		Description:   cmd.Description,
		Category:      cmd.Category,
		Brand:         cmd.Brand,
		Price:         cmd.Price,
		DiscountPrice: cmd.DiscountPrice,
		Stock:         cmd.Stock,
		Featured:      cmd.Featured,
		IsNew:         cmd.IsNew,
		Images:        cmd.Images,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

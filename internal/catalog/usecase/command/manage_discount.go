package command

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// ApplyDiscountCommand represents the command to put a product on discount
type ApplyDiscountCommand struct {
	ID            uint
	DiscountPrice float64
}

// ApplyDiscountHandler handles discount application
type ApplyDiscountHandler struct {
	repo domain.ProductRepository
}

// NewApplyDiscountHandler creates a new apply discount handler
func NewApplyDiscountHandler(repo domain.ProductRepository) *ApplyDiscountHandler {
	return &ApplyDiscountHandler{repo: repo}
}

// Handle executes the apply discount command
func (h *ApplyDiscountHandler) Handle(cmd ApplyDiscountCommand) error {
	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return err
	}
	if cmd.DiscountPrice <= 0 || cmd.DiscountPrice >= product.Price {
		return fmt.Errorf("discount price must be positive and below the regular price")
	}
	return h.repo.ApplyDiscount(cmd.ID, cmd.DiscountPrice)
}

// RemoveDiscountCommand represents the command to take a product off discount
type RemoveDiscountCommand struct {
	ID uint
}

// RemoveDiscountHandler handles discount removal
type RemoveDiscountHandler struct {
	repo domain.ProductRepository
}

// NewRemoveDiscountHandler creates a new remove discount handler
func NewRemoveDiscountHandler(repo domain.ProductRepository) *RemoveDiscountHandler {
	return &RemoveDiscountHandler{repo: repo}
}

// Handle executes the remove discount command
func (h *RemoveDiscountHandler) Handle(cmd RemoveDiscountCommand) error {
	return h.repo.RemoveDiscount(cmd.ID)
}

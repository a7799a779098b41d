package command

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// UpdateStockCommand represents the command to set a product's stock level
type UpdateStockCommand struct {
	ID    uint
	Stock int
}

// UpdateStockHandler handles stock updates
type UpdateStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) error {
	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return h.repo.UpdateStock(cmd.ID, cmd.Stock)
}

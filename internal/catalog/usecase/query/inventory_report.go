package query

import (
	"fmt"

	"github.com/alibix/storefront/internal/catalog/domain"
)

const defaultLowStockThreshold = 10

// InventoryReportQuery asks for the admin stock overview
type InventoryReportQuery struct {
	LowStockThreshold int
	TopSellingLimit   int
}

// InventoryReport summarizes stock levels and sales
type InventoryReport struct {
	LowStock   []domain.Product `json:"low_stock"`
	TopSelling []domain.Product `json:"top_selling"`
}

// InventoryReportHandler handles inventory report queries
type InventoryReportHandler struct {
	repo domain.ProductRepository
}

// NewInventoryReportHandler creates a new inventory report handler
func NewInventoryReportHandler(repo domain.ProductRepository) *InventoryReportHandler {
	return &InventoryReportHandler{repo: repo}
}

// Handle executes the inventory report query
func (h *InventoryReportHandler) Handle(query InventoryReportQuery) (*InventoryReport, error) {
	threshold := query.LowStockThreshold
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	limit := query.TopSellingLimit
	if limit <= 0 {
		limit = 10
	}

	lowStock, err := h.repo.FindLowStock(threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	topSelling, err := h.repo.FindTopSelling(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top selling products: %w", err)
	}

	return &InventoryReport{LowStock: lowStock, TopSelling: topSelling}, nil
}

package query

import (
	"fmt"

	"github.com/alibix/storefront/internal/order/domain"
)

// OrderStats summarizes orders for the admin dashboard
type OrderStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Processing   int     `json:"processing"`
	Shipped      int     `json:"shipped"`
	Delivered    int     `json:"delivered"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"total_revenue"`
}

// GetStatsHandler handles order statistics queries
type GetStatsHandler struct {
	repo domain.OrderRepository
}

// NewGetStatsHandler creates a new order stats handler
func NewGetStatsHandler(repo domain.OrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query. Cancelled orders do not count
// toward revenue.
func (h *GetStatsHandler) Handle() (*OrderStats, error) {
	orders, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	stats := &OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusShipped:
			stats.Shipped++
		case domain.StatusDelivered:
			stats.Delivered++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		if o.Status != domain.StatusCancelled {
			stats.TotalRevenue += o.Total
		}
	}
	return stats, nil
}

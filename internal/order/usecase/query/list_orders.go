package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/alibix/storefront/internal/order/domain"
)

// ListOrdersQuery filters the order list. Zero values mean "no filter".
type ListOrdersQuery struct {
	UserID string
	Status string
	From   time.Time
	To     time.Time
	Limit  int
}

// ListOrdersHandler handles order listing, newest first
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	var orders []domain.Order
	var err error

	switch {
	case query.UserID != "":
		orders, err = h.repo.FindByUserID(query.UserID)
	case query.Status != "":
		orders, err = h.repo.FindByStatus(query.Status)
	default:
		orders, err = h.repo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if !query.From.IsZero() || !query.To.IsZero() {
		filtered := orders[:0]
		for _, o := range orders {
			if !query.From.IsZero() && o.CreatedAt.Before(query.From) {
				continue
			}
			if !query.To.IsZero() && o.CreatedAt.After(query.To) {
				continue
			}
			filtered = append(filtered, o)
		}
		orders = filtered
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if query.Limit > 0 && len(orders) > query.Limit {
		orders = orders[:query.Limit]
	}
	return orders, nil
}

// GetOrderQuery fetches one order
type GetOrderQuery struct {
	OrderID uint
}

// GetOrderHandler handles single order lookups
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(query.OrderID)
}

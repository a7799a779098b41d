package command

import (
	"fmt"
	"time"

	"github.com/alibix/storefront/internal/order/domain"
)

// UpdateStatusCommand moves an order to a new status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles order status transitions
type UpdateStatusHandler struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo, now: time.Now}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) (*domain.Order, error) {
	if !domain.ValidStatus(cmd.Status) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, cmd.Status)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	order.Status = cmd.Status
	order.StatusHistory = append(order.StatusHistory, domain.StatusChange{
		Status:    cmd.Status,
		Timestamp: h.now(),
		Note:      "Order " + cmd.Status,
	})

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

// DeleteOrderCommand removes an order
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler handles order deletion
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	return h.repo.Delete(cmd.OrderID)
}

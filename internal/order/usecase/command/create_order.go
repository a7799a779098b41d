package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alibix/storefront/internal/order/domain"
	"github.com/alibix/storefront/pkg/logger"
)

// ErrInvalidPromoCode is returned when an order names an unknown promo code
var ErrInvalidPromoCode = errors.New("invalid promo code")

// OrderPublisher emits order events to the message bus. Optional.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
}

// CreateOrderCommand represents the command to place an order
type CreateOrderCommand struct {
	UserID          string
	Items           []domain.LineItem
	PromoCode       string
	PaymentMethod   string
	ShippingAddress string
	Phone           string
}

// CreateOrderHandler validates a draft, computes totals and persists the order
type CreateOrderHandler struct {
	repo        domain.OrderRepository
	publisher   OrderPublisher
	deliveryFee float64
	now         func() time.Time
}

// NewCreateOrderHandler creates a new create order handler. publisher may be nil.
func NewCreateOrderHandler(repo domain.OrderRepository, publisher OrderPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{
		repo:        repo,
		publisher:   publisher,
		deliveryFee: domain.DefaultDeliveryFee,
		now:         time.Now,
	}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	order := &domain.Order{
		UserID:          cmd.UserID,
		Items:           cmd.Items,
		PaymentMethod:   cmd.PaymentMethod,
		ShippingAddress: cmd.ShippingAddress,
		Phone:           cmd.Phone,
		PromoCode:       cmd.PromoCode,
		Status:          domain.StatusPending,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	var promoDiscount float64
	if cmd.PromoCode != "" {
		percent, ok := domain.ResolvePromoCode(cmd.PromoCode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPromoCode, cmd.PromoCode)
		}
		subtotal, err := domain.ComputeTotals(cmd.Items, 0, 0, domain.WithDeliveryFee(0))
		if err != nil {
			return nil, err
		}
		promoDiscount = domain.PromoDiscountAmount(subtotal.Subtotal, percent)
	}

	var codFee float64
	if strings.EqualFold(cmd.PaymentMethod, "cod") {
		codFee = domain.CODFee
	}

	totals, err := domain.ComputeTotals(cmd.Items, promoDiscount, codFee, domain.WithDeliveryFee(h.deliveryFee))
	if err != nil {
		return nil, err
	}

	order.Subtotal = totals.Subtotal
	order.DeliveryFee = totals.DeliveryFee
	order.PromoDiscount = totals.PromoDiscount
	order.CODFee = totals.CODFee
	order.Total = totals.Total
	order.TrackingNumber = h.trackingNumber()
	order.StatusHistory = []domain.StatusChange{{
		Status:    domain.StatusPending,
		Timestamp: h.now(),
		Note:      "Order pending",
	}}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, order); err != nil {
			logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}

// trackingNumber builds an "AB" prefixed tracking code from the
// timestamp and a random suffix
func (h *CreateOrderHandler) trackingNumber() string {
	ts := fmt.Sprintf("%d", h.now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "AB" + ts + suffix
}

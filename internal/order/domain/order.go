package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Order status lifecycle
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var (
	// ErrOrderNotFound is returned when an order id does not resolve
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for an unknown order status
	ErrInvalidStatus = errors.New("invalid order status")
)

// ValidStatus reports whether s is a known order status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// LineItem is one product position in a cart or order
type LineItem struct {
	ProductID     uint     `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Quantity      int      `json:"quantity"`
}

// EffectiveUnitPrice returns the discount price when valid, else the
// regular price
func (li LineItem) EffectiveUnitPrice() float64 {
	if li.DiscountPrice != nil && *li.DiscountPrice < li.Price {
		return *li.DiscountPrice
	}
	return li.Price
}

// StatusChange is one entry in an order's status history
type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// Order is a placed customer order
type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          string         `json:"user_id" gorm:"index"`
	Items           []LineItem     `json:"items" gorm:"serializer:json"`
	Subtotal        float64        `json:"subtotal"`
	DeliveryFee     float64        `json:"delivery_fee"`
	PromoCode       string         `json:"promo_code"`
	PromoDiscount   float64        `json:"promo_discount"`
	CODFee          float64        `json:"cod_fee"`
	Total           float64        `json:"total"`
	Status          string         `json:"status" gorm:"index"`
	PaymentMethod   string         `json:"payment_method"`
	ShippingAddress string         `json:"shipping_address"`
	Phone           string         `json:"phone"`
	TrackingNumber  string         `json:"tracking_number"`
	StatusHistory   []StatusChange `json:"status_history" gorm:"serializer:json"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Validate checks the order draft before totals are computed
func (o *Order) Validate() error {
	var problems []string
	if len(o.Items) == 0 {
		problems = append(problems, "order must contain at least one item")
	}
	if o.ShippingAddress == "" {
		problems = append(problems, "shipping address is required")
	}
	if o.PaymentMethod == "" {
		problems = append(problems, "payment method is required")
	}
	if len(o.Phone) < 10 {
		problems = append(problems, "valid phone number is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOrder, strings.Join(problems, "; "))
	}
	return nil
}

// ErrInvalidOrder is returned when an order draft fails validation
var ErrInvalidOrder = errors.New("invalid order")

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	FindByID(id uint) (*Order, error)
	FindAll() ([]Order, error)
	FindByUserID(userID string) ([]Order, error)
	FindByStatus(status string) ([]Order, error)
	Create(order *Order) error
	Update(order *Order) error
	Delete(id uint) error
}

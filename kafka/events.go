package kafka

import "time"

// ProductViewedEvent mirrors a browsing event off the storefront
type ProductViewedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Price     float64   `json:"price"`
	ViewCount int       `json:"view_count"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent is emitted when checkout completes
type OrderPlacedEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OrderID       uint            `json:"order_id"`
	UserID        string          `json:"user_id"`
	Items         []OrderItemView `json:"items"`
	Total         float64         `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
}

// OrderItemView is one order line inside an OrderPlacedEvent
type OrderItemView struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Event types
const (
	EventTypeProductViewed = "product.viewed"
	EventTypeOrderPlaced   = "order.placed"
)

// Kafka topics
const (
	TopicProductViewed = "product-viewed"
	TopicOrderPlaced   = "order-placed"
)

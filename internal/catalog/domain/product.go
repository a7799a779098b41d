package domain

import (
	"errors"
	"math"
	"time"
)

// ErrProductNotFound is returned when a product id does not resolve
var ErrProductNotFound = errors.New("product not found")

// Product represents a catalog product
type Product struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	NameUrdu      string     `json:"name_urdu"`
	Description   string     `json:"description"`
	Category      string     `json:"category" gorm:"index"`
	Brand         string     `json:"brand"`
	Price         float64    `json:"price" gorm:"not null"`
	DiscountPrice *float64   `json:"discount_price,omitempty"`
	Stock         int        `json:"stock" gorm:"not null;default:0"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	Featured      bool       `json:"featured"`
	IsNew         bool       `json:"is_new"`
	Sold          int        `json:"sold"`
	Images        []string   `json:"images" gorm:"serializer:json"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsDiscounted reports whether the product has an active discount
func (p *Product) IsDiscounted() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}

// EffectivePrice returns the price used for all monetary calculations:
// the discount price when valid, the regular price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.IsDiscounted() {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercentage returns the rounded discount percent, 0 when the
// discount price is absent or not lower than the regular price
func (p *Product) DiscountPercentage() int {
	if !p.IsDiscounted() || p.Price <= 0 {
		return 0
	}
	return int(math.Round((p.Price - *p.DiscountPrice) / p.Price * 100))
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
	FindByCategory(category string) ([]Product, error)
	FindFeatured() ([]Product, error)
	FindNewArrivals() ([]Product, error)
	FindDiscounted() ([]Product, error)
	Search(query string) ([]Product, error)
	FindRelated(id uint, limit int) ([]Product, error)
	FindLowStock(threshold int) ([]Product, error)
	FindTopSelling(limit int) ([]Product, error)

	Create(product *Product) error
	Update(product *Product) error
	Delete(id uint) error
	UpdateStock(id uint, stock int) error
	ApplyDiscount(id uint, discountPrice float64) error
	RemoveDiscount(id uint) error
	IncrementSold(id uint, quantity int) error
}

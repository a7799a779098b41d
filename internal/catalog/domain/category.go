package domain

import (
	"errors"
	"time"
)

// ErrCategoryNotFound is returned when a category id or slug does not resolve
var ErrCategoryNotFound = errors.New("category not found")

// Category groups products for browsing
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	NameUrdu  string    `json:"name_urdu"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	FindByID(id uint) (*Category, error)
	FindBySlug(slug string) (*Category, error)
	FindAll() ([]Category, error)
	Create(category *Category) error
	Update(category *Category) error
	Delete(id uint) error
}

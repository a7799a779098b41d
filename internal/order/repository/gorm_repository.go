package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alibix/storefront/internal/order/domain"
)

// GormOrderRepository persists orders in PostgreSQL via GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM-backed order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByUserID(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByStatus(status string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("status = ?", status).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) Update(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *GormOrderRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

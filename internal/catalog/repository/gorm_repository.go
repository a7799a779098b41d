package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// GormProductRepository persists the catalog in PostgreSQL via GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-backed catalog repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{}, &domain.Category{})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProductNotFound
	}
	return err
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(category string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("LOWER(category) = ?", strings.ToLower(category)).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindFeatured() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("featured = ?", true).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindNewArrivals() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("is_new = ?", true).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindDiscounted() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("discount_price IS NOT NULL AND discount_price < price").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Search(query string) ([]domain.Product, error) {
	var products []domain.Product
	term := "%" + strings.ToLower(query) + "%"
	err := r.db.Where(
		"LOWER(name) LIKE ? OR LOWER(name_urdu) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
		term, term, term, term,
	).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindRelated(id uint, limit int) ([]domain.Product, error) {
	product, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	err = r.db.Where("category = ? AND id <> ?", product.Category, id).Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindLowStock(threshold int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("stock <= ?", threshold).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindTopSelling(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("sold DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) UpdateStock(id uint, stock int) error {
	return r.updateColumn(id, "stock", stock)
}

func (r *GormProductRepository) ApplyDiscount(id uint, discountPrice float64) error {
	return r.updateColumn(id, "discount_price", discountPrice)
}

func (r *GormProductRepository) RemoveDiscount(id uint) error {
	return r.updateColumn(id, "discount_price", nil)
}

func (r *GormProductRepository) IncrementSold(id uint, quantity int) error {
	result := r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		Update("sold", gorm.Expr("sold + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) updateColumn(id uint, column string, value interface{}) error {
	result := r.db.Model(&domain.Product{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// GormCategoryRepository persists categories in PostgreSQL via GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM-backed category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindBySlug(slug string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *GormCategoryRepository) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCategoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *GormCategoryRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

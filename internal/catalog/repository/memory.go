package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alibix/storefront/internal/catalog/domain"
)

// MemoryProductRepository keeps the catalog in memory. It backs the
// storefront when no database is configured and test instances are
// isolated from each other.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   uint
}

// NewMemoryProductRepository creates an empty in-memory catalog
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{nextID: 1}
}

// NewSeededProductRepository creates an in-memory catalog preloaded with products
func NewSeededProductRepository(products []domain.Product) *MemoryProductRepository {
	repo := NewMemoryProductRepository()
	for i := range products {
		p := products[i]
		if p.ID == 0 {
			p.ID = repo.nextID
		}
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
		repo.products = append(repo.products, p)
	}
	return repo
}

func (r *MemoryProductRepository) indexOf(id uint) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryProductRepository) FindByID(id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

func (r *MemoryProductRepository) FindAll() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepository) filter(keep func(*domain.Product) bool) []domain.Product {
	var out []domain.Product
	for i := range r.products {
		if keep(&r.products[i]) {
			out = append(out, r.products[i])
		}
	}
	return out
}

func (r *MemoryProductRepository) FindByCategory(category string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p *domain.Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (r *MemoryProductRepository) FindFeatured() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p *domain.Product) bool { return p.Featured }), nil
}

func (r *MemoryProductRepository) FindNewArrivals() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p *domain.Product) bool { return p.IsNew }), nil
}

func (r *MemoryProductRepository) FindDiscounted() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p *domain.Product) bool { return p.IsDiscounted() }), nil
}

func (r *MemoryProductRepository) Search(query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term := strings.ToLower(query)
	return r.filter(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.NameUrdu), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term)
	}), nil
}

func (r *MemoryProductRepository) FindRelated(id uint, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	category := r.products[i].Category
	related := r.filter(func(p *domain.Product) bool {
		return p.ID != id && p.Category == category
	})
	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

func (r *MemoryProductRepository) FindLowStock(threshold int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(p *domain.Product) bool { return p.Stock <= threshold }), nil
}

func (r *MemoryProductRepository) FindTopSelling(limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sold > out[j].Sold })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryProductRepository) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(product.ID)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	product.CreatedAt = r.products[i].CreatedAt
	product.UpdatedAt = time.Now()
	r.products[i] = *product
	return nil
}

func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *MemoryProductRepository) UpdateStock(id uint, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products[i].Stock = stock
	r.products[i].UpdatedAt = time.Now()
	return nil
}

func (r *MemoryProductRepository) ApplyDiscount(id uint, discountPrice float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products[i].DiscountPrice = &discountPrice
	r.products[i].UpdatedAt = time.Now()
	return nil
}

func (r *MemoryProductRepository) RemoveDiscount(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products[i].DiscountPrice = nil
	r.products[i].UpdatedAt = time.Now()
	return nil
}

func (r *MemoryProductRepository) IncrementSold(id uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	r.products[i].Sold += quantity
	return nil
}

// MemoryCategoryRepository keeps categories in memory
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
	nextID     uint
}

// NewMemoryCategoryRepository creates an empty in-memory category store
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{nextID: 1}
}

// NewSeededCategoryRepository creates an in-memory category store preloaded with categories
func NewSeededCategoryRepository(categories []domain.Category) *MemoryCategoryRepository {
	repo := NewMemoryCategoryRepository()
	for i := range categories {
		c := categories[i]
		if c.ID == 0 {
			c.ID = repo.nextID
		}
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
		repo.categories = append(repo.categories, c)
	}
	return repo
}

func (r *MemoryCategoryRepository) indexOf(id uint) int {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryCategoryRepository) FindByID(id uint) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	category := r.categories[i]
	return &category, nil
}

func (r *MemoryCategoryRepository) FindBySlug(slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *MemoryCategoryRepository) FindAll() ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryCategoryRepository) Create(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = r.nextID
	r.nextID++
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	r.categories = append(r.categories, *category)
	return nil
}

func (r *MemoryCategoryRepository) Update(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(category.ID)
	if i < 0 {
		return domain.ErrCategoryNotFound
	}
	category.CreatedAt = r.categories[i].CreatedAt
	category.UpdatedAt = time.Now()
	r.categories[i] = *category
	return nil
}

func (r *MemoryCategoryRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrCategoryNotFound
	}
	r.categories = append(r.categories[:i], r.categories[i+1:]...)
	return nil
}

package repository

import (
	"sync"
	"time"

	"github.com/alibix/storefront/internal/order/domain"
)

// MemoryOrderRepository keeps orders in memory for tests and
// database-less runs
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	nextID uint
}

// NewMemoryOrderRepository creates an empty in-memory order store
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{nextID: 1}
}

func (r *MemoryOrderRepository) indexOf(id uint) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryOrderRepository) FindByID(id uint) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrOrderNotFound
	}
	order := r.orders[i]
	return &order, nil
}

func (r *MemoryOrderRepository) FindAll() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *MemoryOrderRepository) FindByUserID(userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for i := range r.orders {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) FindByStatus(status string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for i := range r.orders {
		if r.orders[i].Status == status {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) Update(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(order.ID)
	if i < 0 {
		return domain.ErrOrderNotFound
	}
	order.CreatedAt = r.orders[i].CreatedAt
	order.UpdatedAt = time.Now()
	r.orders[i] = *order
	return nil
}

func (r *MemoryOrderRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrOrderNotFound
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}

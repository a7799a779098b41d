package usecase

import (
	"context"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
	"github.com/alibix/storefront/internal/wishlist/domain"
	"github.com/alibix/storefront/pkg/logger"
)

// Service exposes the wishlist operations for one session store
type Service struct {
	repo    domain.WishlistRepository
	catalog catalogdomain.ProductRepository
}

// NewService creates a new wishlist service
func NewService(repo domain.WishlistRepository, catalog catalogdomain.ProductRepository) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Toggle flips the saved state of a product and reports whether it is
// now on the list
func (s *Service) Toggle(ctx context.Context, sessionID string, productID uint) (bool, error) {
	list, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	added := list.Toggle(productID)
	if err := s.repo.Save(ctx, sessionID, list); err != nil {
		return false, err
	}
	return added, nil
}

// Contains reports whether a product is on the session wishlist
func (s *Service) Contains(ctx context.Context, sessionID string, productID uint) (bool, error) {
	list, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return list.Contains(productID), nil
}

// List resolves the wishlist against the catalog. Products that have
// been removed from the catalog are skipped.
func (s *Service) List(ctx context.Context, sessionID string) ([]catalogdomain.Product, error) {
	list, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]catalogdomain.Product, 0, len(list.ProductIDs))
	for _, id := range list.ProductIDs {
		product, err := s.catalog.FindByID(id)
		if err != nil {
			logger.Debug(ctx).Err(err).Uint("product_id", id).Msg("Skipping unresolvable wishlist product")
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

// Clear empties the session wishlist
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}

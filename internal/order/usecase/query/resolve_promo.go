package query

import (
	"github.com/alibix/storefront/internal/order/domain"
)

// ResolvePromoQuery checks a promo code against a cart subtotal
type ResolvePromoQuery struct {
	Code     string
	Subtotal float64
}

// PromoResult reports the outcome of a promo code resolution. An
// unknown code is a valid result with Valid=false, not an error.
type PromoResult struct {
	Code     string  `json:"code"`
	Valid    bool    `json:"valid"`
	Percent  int     `json:"percent"`
	Discount float64 `json:"discount"`
}

// ResolvePromoHandler handles promo code resolution
type ResolvePromoHandler struct{}

// NewResolvePromoHandler creates a new promo resolution handler
func NewResolvePromoHandler() *ResolvePromoHandler {
	return &ResolvePromoHandler{}
}

// Handle executes the promo resolution query
func (h *ResolvePromoHandler) Handle(query ResolvePromoQuery) PromoResult {
	percent, ok := domain.ResolvePromoCode(query.Code)
	result := PromoResult{Code: query.Code, Valid: ok, Percent: percent}
	if ok {
		result.Discount = domain.PromoDiscountAmount(query.Subtotal, percent)
	}
	return result
}

package domain

import (
	"errors"
	"math"
	"strings"
)

// Pricing constants of the reference storefront
const (
	DefaultDeliveryFee = 170
	CODFee             = 50

	// A promo discount can never exceed this fraction of the subtotal
	maxDiscountFraction = 0.5
)

// ErrInvalidLineItem is returned for line items the calculator must
// reject rather than silently fold into a bogus total
var ErrInvalidLineItem = errors.New("invalid line item")

// OrderTotals is the immutable result of a totals calculation
type OrderTotals struct {
	Subtotal      float64 `json:"subtotal"`
	DeliveryFee   float64 `json:"delivery_fee"`
	PromoDiscount float64 `json:"promo_discount"`
	CODFee        float64 `json:"cod_fee"`
	Total         float64 `json:"total"`
}

// TotalsOption adjusts the calculator configuration
type TotalsOption func(*totalsConfig)

type totalsConfig struct {
	deliveryFee float64
}

// WithDeliveryFee overrides the flat delivery fee
func WithDeliveryFee(fee float64) TotalsOption {
	return func(c *totalsConfig) { c.deliveryFee = fee }
}

// ComputeTotals calculates order totals from line items. Pure: inputs
// are never mutated. The applied promo discount is capped at half the
// subtotal and the grand total never goes negative.
func ComputeTotals(items []LineItem, promoDiscount, codFee float64, opts ...TotalsOption) (OrderTotals, error) {
	cfg := totalsConfig{deliveryFee: DefaultDeliveryFee}
	for _, opt := range opts {
		opt(&cfg)
	}

	var subtotal float64
	for _, item := range items {
		unit := item.EffectiveUnitPrice()
		if item.Quantity <= 0 || unit <= 0 || math.IsNaN(unit) {
			return OrderTotals{}, ErrInvalidLineItem
		}
		subtotal += unit * float64(item.Quantity)
	}

	if promoDiscount < 0 || math.IsNaN(promoDiscount) || codFee < 0 || math.IsNaN(codFee) {
		return OrderTotals{}, ErrInvalidLineItem
	}

	applied := math.Min(promoDiscount, subtotal*maxDiscountFraction)
	total := math.Max(0, subtotal+cfg.deliveryFee+codFee-applied)

	return OrderTotals{
		Subtotal:      subtotal,
		DeliveryFee:   cfg.deliveryFee,
		PromoDiscount: applied,
		CODFee:        codFee,
		Total:         total,
	}, nil
}

// promoCodes maps known codes to their percentage discount
var promoCodes = map[string]int{
	"SAVE10":  10,
	"FIRST20": 20,
	"NEWUSER": 15,
}

// ResolvePromoCode resolves a promo code (case-insensitive) to its
// percentage. Unknown codes yield 0 and ok=false; callers report that
// as an invalid code, not an error.
func ResolvePromoCode(code string) (percent int, ok bool) {
	percent, ok = promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	return percent, ok
}

// PromoDiscountAmount converts a resolved percentage into an absolute
// discount for the given subtotal
func PromoDiscountAmount(subtotal float64, percent int) float64 {
	return subtotal * float64(percent) / 100
}

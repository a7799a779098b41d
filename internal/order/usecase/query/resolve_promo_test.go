package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePromo(t *testing.T) {
	handler := NewResolvePromoHandler()

	tests := []struct {
		name     string
		query    ResolvePromoQuery
		expected PromoResult
	}{
		{
			"known code",
			ResolvePromoQuery{Code: "SAVE10", Subtotal: 2000},
			PromoResult{Code: "SAVE10", Valid: true, Percent: 10, Discount: 200},
		},
		{
			"case insensitive",
			ResolvePromoQuery{Code: "first20", Subtotal: 1000},
			PromoResult{Code: "first20", Valid: true, Percent: 20, Discount: 200},
		},
		{
			"discount capped at half the subtotal",
			ResolvePromoQuery{Code: "NEWUSER", Subtotal: 100},
			PromoResult{Code: "NEWUSER", Valid: true, Percent: 15, Discount: 15},
		},
		{
			"unknown code is not an error",
			ResolvePromoQuery{Code: "BOGUS", Subtotal: 2000},
			PromoResult{Code: "BOGUS", Valid: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handler.Handle(tt.query))
		})
	}
}

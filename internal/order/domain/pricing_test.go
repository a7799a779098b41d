package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestComputeTotals_StandardOrder(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Sneakers", Price: 1500, Quantity: 1},
		{ProductID: 2, Name: "Shirt", Price: 800, DiscountPrice: ptr(600), Quantity: 1},
	}

	totals, err := ComputeTotals(items, 1000, 0)
	require.NoError(t, err)

	assert.Equal(t, 2100.0, totals.Subtotal)
	assert.Equal(t, 170.0, totals.DeliveryFee)
	assert.Equal(t, 1000.0, totals.PromoDiscount)
	assert.Equal(t, 0.0, totals.CODFee)
	assert.Equal(t, 1270.0, totals.Total)
}

func TestComputeTotals_CODFee(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Sneakers", Price: 2000, Quantity: 1},
	}

	totals, err := ComputeTotals(items, 0, CODFee)
	require.NoError(t, err)

	assert.Equal(t, 50.0, totals.CODFee)
	assert.Equal(t, 2000.0+170+50, totals.Total)
}

func TestComputeTotals_DiscountCappedAtHalfSubtotal(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Sneakers", Price: 2100, Quantity: 1},
	}

	totals, err := ComputeTotals(items, 2000, 0)
	require.NoError(t, err)

	assert.Equal(t, 1050.0, totals.PromoDiscount)
	assert.Equal(t, 2100.0+170-1050, totals.Total)
}

func TestComputeTotals_QuantityMultiplies(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Socks", Price: 300, Quantity: 3},
		{ProductID: 2, Name: "Cap", Price: 500, DiscountPrice: ptr(400), Quantity: 2},
	}

	totals, err := ComputeTotals(items, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1700.0, totals.Subtotal)
}

func TestComputeTotals_DeliveryFeeOverride(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Sneakers", Price: 1000, Quantity: 1},
	}

	totals, err := ComputeTotals(items, 0, 0, WithDeliveryFee(0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 1000.0, totals.Total)
}

func TestComputeTotals_RejectsInvalidInput(t *testing.T) {
	valid := []LineItem{{ProductID: 1, Name: "Sneakers", Price: 1000, Quantity: 1}}

	tests := []struct {
		name  string
		items []LineItem
		promo float64
		cod   float64
	}{
		{"zero quantity", []LineItem{{ProductID: 1, Price: 1000, Quantity: 0}}, 0, 0},
		{"negative quantity", []LineItem{{ProductID: 1, Price: 1000, Quantity: -2}}, 0, 0},
		{"zero price", []LineItem{{ProductID: 1, Price: 0, Quantity: 1}}, 0, 0},
		{"NaN price", []LineItem{{ProductID: 1, Price: math.NaN(), Quantity: 1}}, 0, 0},
		{"negative promo", valid, -10, 0},
		{"NaN promo", valid, math.NaN(), 0},
		{"negative cod fee", valid, 0, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.items, tt.promo, tt.cod)
			assert.ErrorIs(t, err, ErrInvalidLineItem)
		})
	}
}

func TestComputeTotals_EmptyOrder(t *testing.T) {
	totals, err := ComputeTotals(nil, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 170.0, totals.Total)
}

func TestResolvePromoCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		percent int
		ok      bool
	}{
		{"SAVE10", "SAVE10", 10, true},
		{"FIRST20", "FIRST20", 20, true},
		{"NEWUSER", "NEWUSER", 15, true},
		{"lowercase", "save10", 10, true},
		{"mixed case", "First20", 20, true},
		{"surrounding whitespace", "  newuser ", 15, true},
		{"unknown code", "BOGUS50", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, ok := ResolvePromoCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.percent, percent)
		})
	}
}

func TestPromoDiscountAmount(t *testing.T) {
	assert.Equal(t, 210.0, PromoDiscountAmount(2100, 10))
	assert.Equal(t, 420.0, PromoDiscountAmount(2100, 20))
	assert.Equal(t, 0.0, PromoDiscountAmount(2100, 0))
}

func TestLineItem_EffectiveUnitPrice(t *testing.T) {
	assert.Equal(t, 800.0, LineItem{Price: 800, Quantity: 1}.EffectiveUnitPrice())
	assert.Equal(t, 600.0, LineItem{Price: 800, DiscountPrice: ptr(600), Quantity: 1}.EffectiveUnitPrice())
}

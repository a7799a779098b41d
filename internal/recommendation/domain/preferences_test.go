package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	historydomain "github.com/alibix/storefront/internal/history/domain"
)

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		bucket string
	}{
		{"zero", 0, "under-1k"},
		{"just under 1k", 999.99, "under-1k"},
		{"exactly 1k", 1000, "1k-5k"},
		{"mid range", 3500, "1k-5k"},
		{"exactly 5k", 5000, "5k-10k"},
		{"exactly 10k", 10000, "10k-25k"},
		{"exactly 25k", 25000, "25k-50k"},
		{"exactly 50k", 50000, "over-50k"},
		{"luxury", 250000, "over-50k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bucket, PriceBucket(tt.price))
		})
	}
}

func TestAnalyzePreferences(t *testing.T) {
	views := []historydomain.ViewRecord{
		{ProductID: 1, Name: "Earbuds", Category: "electronics", Brand: "SoundCore", Price: 4500},
		{ProductID: 2, Name: "Watch", Category: "electronics", Brand: "TechFit", Price: 8900},
		{ProductID: 3, Name: "Kurta", Category: "clothing", Price: 2400},
	}
	searches := []historydomain.SearchRecord{
		{Query: "earbuds", Frequency: 2},
		{Query: "watch", Frequency: 1},
	}

	profile := AnalyzePreferences(views, searches)

	assert.Equal(t, 2, profile.Categories["electronics"])
	assert.Equal(t, 1, profile.Categories["clothing"])
	assert.Equal(t, 2, profile.PriceRanges["1k-5k"])
	assert.Equal(t, 1, profile.PriceRanges["5k-10k"])
	assert.Equal(t, 1, profile.Brands["SoundCore"])
	assert.Equal(t, 1, profile.Brands["TechFit"])
	assert.Equal(t, 2, profile.SearchTerms["earbuds"])
	assert.Equal(t, 1, profile.SearchTerms["watch"])

	// A product without a brand must not pollute the brand map
	_, hasEmptyBrand := profile.Brands[""]
	assert.False(t, hasEmptyBrand)
}

func TestAnalyzePreferences_EmptyHistory(t *testing.T) {
	profile := AnalyzePreferences(nil, nil)

	assert.Empty(t, profile.Categories)
	assert.Empty(t, profile.PriceRanges)
	assert.Empty(t, profile.Brands)
	assert.Empty(t, profile.SearchTerms)
}

func TestAnalyzePreferences_DoesNotMutateInputs(t *testing.T) {
	views := []historydomain.ViewRecord{
		{ProductID: 1, Category: "shoes", Brand: "SprintX", Price: 7999},
	}
	searches := []historydomain.SearchRecord{{Query: "running shoes", Frequency: 3}}

	AnalyzePreferences(views, searches)
	AnalyzePreferences(views, searches)

	assert.Equal(t, "shoes", views[0].Category)
	assert.Equal(t, 3, searches[0].Frequency)
}

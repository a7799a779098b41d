// Package domain holds the pure recommendation rules: preference
// aggregation, the heuristic scoring modes and the accuracy simulator.
package domain

import (
	historydomain "github.com/alibix/storefront/internal/history/domain"
)

// Config carries the heuristic weights and limits
type Config struct {
	ViewHistoryWeight        float64
	SearchHistoryWeight      float64
	CategoryPreferenceWeight float64
	PopularityWeight         float64
	BrandWeight              float64
	DiscountBonus            float64
	MaxRecommendations       int
	AccuracyRate             float64
}

// DefaultConfig returns the production weights
func DefaultConfig() Config {
	return Config{
		ViewHistoryWeight:        0.4,
		SearchHistoryWeight:      0.3,
		CategoryPreferenceWeight: 0.2,
		PopularityWeight:         0.1,
		BrandWeight:              0.15,
		DiscountBonus:            3,
		MaxRecommendations:       12,
		AccuracyRate:             0.6,
	}
}

// Profile aggregates interaction history into frequency maps
type Profile struct {
	Categories  map[string]int
	PriceRanges map[string]int
	Brands      map[string]int
	SearchTerms map[string]int
}

// PriceBucket maps a price onto its fixed-boundary range label
func PriceBucket(price float64) string {
	switch {
	case price < 1000:
		return "under-1k"
	case price < 5000:
		return "1k-5k"
	case price < 10000:
		return "5k-10k"
	case price < 25000:
		return "10k-25k"
	case price < 50000:
		return "25k-50k"
	default:
		return "over-50k"
	}
}

// AnalyzePreferences derives a preference profile from the interaction
// histories. Pure: inputs are never mutated and the profile is rebuilt
// on every call.
func AnalyzePreferences(views []historydomain.ViewRecord, searches []historydomain.SearchRecord) Profile {
	profile := Profile{
		Categories:  make(map[string]int),
		PriceRanges: make(map[string]int),
		Brands:      make(map[string]int),
		SearchTerms: make(map[string]int),
	}

	for _, v := range views {
		profile.Categories[v.Category]++
		profile.PriceRanges[PriceBucket(v.Price)]++
		if v.Brand != "" {
			profile.Brands[v.Brand]++
		}
	}

	for _, s := range searches {
		profile.SearchTerms[s.Query] += s.Frequency
	}

	return profile
}

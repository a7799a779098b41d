package domain

import (
	"math"
	"sort"
	"strings"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
)

// ScoredProduct pairs a candidate with its recommendation score
type ScoredProduct struct {
	Product catalogdomain.Product `json:"product"`
	Score   float64               `json:"score"`
}

// ExcludeSet marks product ids to skip during scoring
type ExcludeSet map[uint]struct{}

// NewExcludeSet builds an exclusion set from product ids
func NewExcludeSet(ids ...uint) ExcludeSet {
	set := make(ExcludeSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s ExcludeSet) contains(id uint) bool {
	_, ok := s[id]
	return ok
}

// rankDescending sorts by score, equal scores keep input order
func rankDescending(scored []ScoredProduct) []ScoredProduct {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}

// ScorePersonalized ranks candidates against a preference profile
func ScorePersonalized(candidates []catalogdomain.Product, profile Profile, exclude ExcludeSet, cfg Config) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(candidates))
	for _, p := range candidates {
		if exclude.contains(p.ID) {
			continue
		}
		scored = append(scored, ScoredProduct{Product: p, Score: personalizedScore(&p, profile, cfg)})
	}
	return rankDescending(scored)
}

func personalizedScore(p *catalogdomain.Product, profile Profile, cfg Config) float64 {
	score := float64(profile.Categories[p.Category]) * cfg.CategoryPreferenceWeight
	score += float64(profile.PriceRanges[PriceBucket(p.Price)]) * cfg.ViewHistoryWeight

	if p.Brand != "" {
		score += float64(profile.Brands[p.Brand]) * cfg.BrandWeight
	}

	score += searchRelevance(p, profile.SearchTerms) * cfg.SearchHistoryWeight
	score += popularityScore(p) * cfg.PopularityWeight

	if p.IsDiscounted() {
		score += cfg.DiscountBonus
	}

	return math.Max(0, score)
}

// searchRelevance sums frequency*2 over search terms contained in the
// product's searchable text
func searchRelevance(p *catalogdomain.Product, terms map[string]int) float64 {
	if len(terms) == 0 {
		return 0
	}
	text := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
	var relevance float64
	for term, frequency := range terms {
		if strings.Contains(text, term) {
			relevance += float64(frequency) * 2
		}
	}
	return relevance
}

func popularityScore(p *catalogdomain.Product) float64 {
	score := p.Rating*2 + math.Log(math.Max(float64(p.Reviews), 1))
	if p.Featured {
		score += 5
	}
	return score
}

// ScoreBySimilarity ranks candidates against a reference product
func ScoreBySimilarity(candidates []catalogdomain.Product, reference *catalogdomain.Product, exclude ExcludeSet) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == reference.ID || exclude.contains(p.ID) {
			continue
		}
		scored = append(scored, ScoredProduct{Product: p, Score: similarityScore(&p, reference)})
	}
	return rankDescending(scored)
}

func similarityScore(p, reference *catalogdomain.Product) float64 {
	var score float64

	if p.Category == reference.Category {
		score += 10
	}

	priceDiff := math.Abs(p.Price-reference.Price) / reference.Price
	score += math.Max(0, 5-priceDiff*10)

	ratingDiff := math.Abs(p.Rating - reference.Rating)
	score += math.Max(0, 3-ratingDiff)

	if p.Brand != "" && p.Brand == reference.Brand {
		score += 4
	}

	return score
}

// ScoreByCategory ranks candidates on popularity within a category
func ScoreByCategory(candidates []catalogdomain.Product, exclude ExcludeSet) []ScoredProduct {
	scored := make([]ScoredProduct, 0, len(candidates))
	for _, p := range candidates {
		if exclude.contains(p.ID) {
			continue
		}
		scored = append(scored, ScoredProduct{Product: p, Score: categoryScore(&p)})
	}
	return rankDescending(scored)
}

func categoryScore(p *catalogdomain.Product) float64 {
	score := p.Rating*2 + math.Log(math.Max(float64(p.Reviews), 1))
	if p.Featured {
		score += 3
	}
	if p.IsDiscounted() {
		score += 2
	}
	if p.IsNew {
		score += 1
	}
	return score
}

// SimilarCandidate reports whether a product belongs in the similarity
// candidate pool for the reference: same category, or priced within 30%.
func SimilarCandidate(p, reference *catalogdomain.Product) bool {
	if p.ID == reference.ID {
		return false
	}
	if p.Category == reference.Category {
		return true
	}
	if reference.Price <= 0 {
		return false
	}
	return math.Abs(p.Price-reference.Price)/reference.Price < 0.3
}

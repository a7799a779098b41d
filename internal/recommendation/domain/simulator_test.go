package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/alibix/storefront/internal/catalog/domain"
)

func rankedFixture(n int) []ScoredProduct {
	ranked := make([]ScoredProduct, 0, n)
	for i := 0; i < n; i++ {
		ranked = append(ranked, ScoredProduct{
			Product: catalogdomain.Product{ID: uint(i + 1)},
			Score:   float64(n - i),
		})
	}
	return ranked
}

func TestSimulator_TopPortionKeptInOrder(t *testing.T) {
	sim := NewSimulator(0.6, rand.New(rand.NewSource(1)))
	ranked := rankedFixture(20)

	result := sim.Apply(ranked, 10)
	require.Len(t, result, 10)

	// floor(10 * 0.6) == 6 accurate entries, verbatim
	for i := 0; i < 6; i++ {
		assert.Equal(t, ranked[i].Product.ID, result[i].Product.ID)
	}

	// The rest is sampled from the lower-ranked pool
	for _, sp := range result[6:] {
		assert.Greater(t, sp.Product.ID, uint(6))
	}
}

func TestSimulator_NoDuplicates(t *testing.T) {
	sim := NewSimulator(0.6, rand.New(rand.NewSource(42)))
	ranked := rankedFixture(30)

	result := sim.Apply(ranked, 12)
	require.Len(t, result, 12)

	seen := make(map[uint]bool)
	for _, sp := range result {
		assert.False(t, seen[sp.Product.ID], "product %d returned twice", sp.Product.ID)
		seen[sp.Product.ID] = true
	}
}

func TestSimulator_DeterministicWithSeed(t *testing.T) {
	a := NewSimulator(0.6, rand.New(rand.NewSource(7))).Apply(rankedFixture(20), 10)
	b := NewSimulator(0.6, rand.New(rand.NewSource(7))).Apply(rankedFixture(20), 10)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Product.ID, b[i].Product.ID)
	}
}

func TestSimulator_ShortListReturnedWhole(t *testing.T) {
	sim := NewSimulator(0.6, rand.New(rand.NewSource(1)))
	ranked := rankedFixture(4)

	result := sim.Apply(ranked, 10)
	assert.Len(t, result, 4)

	seen := make(map[uint]bool)
	for _, sp := range result {
		seen[sp.Product.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestSimulator_EdgeLimits(t *testing.T) {
	sim := NewSimulator(0.6, rand.New(rand.NewSource(1)))

	assert.Nil(t, sim.Apply(rankedFixture(5), 0))
	assert.Nil(t, sim.Apply(nil, 10))

	// rate 1.0 keeps the ranking exact
	exact := NewSimulator(1.0, rand.New(rand.NewSource(1))).Apply(rankedFixture(10), 5)
	require.Len(t, exact, 5)
	for i, sp := range exact {
		assert.Equal(t, uint(i+1), sp.Product.ID)
	}
}

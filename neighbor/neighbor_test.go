package neighbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ydarma/fluent-data/neighbor"
	"github.com/ydarma/fluent-data/space"
)

func sqDist(q, c space.Vector) float64 { return space.SqDistVector(q, c) }

func TestGetNeighborhood_None(t *testing.T) {
	n := neighbor.GetNeighborhood(space.Vector{0, 0}, []space.Vector{}, sqDist)
	assert.True(t, n.IsNone())
}

func TestGetNeighborhood_One(t *testing.T) {
	centers := []space.Vector{{1, 1}}
	n := neighbor.GetNeighborhood(space.Vector{0, 0}, centers, sqDist)
	assert.True(t, n.IsOne())
	assert.Equal(t, 2.0, n.First.SqDist)
}

// TestGetNeighborhood_Two checks a nearest-two query against four centers
// surrounding the origin.
func TestGetNeighborhood_Two(t *testing.T) {
	centers := []space.Vector{{1, 1}, {3.5, -1.6}, {2.4, 4}, {-0.5, 1}}
	n := neighbor.GetNeighborhood(space.Vector{0, 0}, centers, sqDist)

	assert.True(t, n.IsTwo())
	assert.InDeltaSlice(t, []float64{-0.5, 1}, n.First.Candidate, 1e-9)
	assert.InDelta(t, 1.25, n.First.SqDist, 1e-9)
	assert.InDeltaSlice(t, []float64{1, 1}, n.Second.Candidate, 1e-9)
	assert.InDelta(t, 2.0, n.Second.SqDist, 1e-9)

	// Every other candidate must be at least as far as the runner-up.
	for _, c := range centers {
		d := sqDist(space.Vector{0, 0}, c)
		assert.GreaterOrEqual(t, d, n.Second.SqDist-1e-12)
	}
}

func TestGetNeighborhood_SecondQuery(t *testing.T) {
	centers := []space.Vector{{1, 1}, {3.5, -1.6}, {2.4, 4}, {-0.5, 1}}
	n := neighbor.GetNeighborhood(space.Vector{1.2, 5}, centers, sqDist)

	assert.InDeltaSlice(t, []float64{2.4, 4}, n.First.Candidate, 1e-9)
	assert.InDelta(t, 2.44, n.First.SqDist, 1e-9)
	assert.InDeltaSlice(t, []float64{1, 1}, n.Second.Candidate, 1e-9)
	assert.InDelta(t, 16.04, n.Second.SqDist, 1e-9)
}

// TestGetNeighborhood_TieBreak checks that the first-seen candidate among
// equal distances keeps its earlier rank.
func TestGetNeighborhood_TieBreak(t *testing.T) {
	centers := []space.Vector{{1, 0}, {0, 1}, {-1, 0}}
	n := neighbor.GetNeighborhood(space.Vector{0, 0}, centers, sqDist)
	assert.InDeltaSlice(t, []float64{1, 0}, n.First.Candidate, 1e-9)
	assert.InDeltaSlice(t, []float64{0, 1}, n.Second.Candidate, 1e-9)
}

// Exhaustive over the 6 orderings of three distinct squared distances:
// candidates here carry their own distance directly, so the identity
// "distance" function isolates the min-two reduction from any geometry.
func TestSmallest_ExhaustiveOrderings(t *testing.T) {
	identity := func(_ struct{}, c float64) float64 { return c }
	values := [][3]float64{
		{7, 4, 1}, {7, 4, 5}, {7, 4, 8},
		{1, 4, 7}, {4, 1, 7}, {1, 7, 4},
		{4, 7, 1},
	}
	for _, v := range values {
		n := neighbor.GetNeighborhood(struct{}{}, []float64{v[0], v[1], v[2]}, identity)
		got := [2]float64{n.First.SqDist, n.Second.SqDist}
		want := smallestTwoOf(v)
		assert.Equal(t, want, got, "orderings %v", v)
	}
}

func smallestTwoOf(v [3]float64) [2]float64 {
	sorted := v
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	return [2]float64{sorted[0], sorted[1]}
}

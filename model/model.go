package model

import (
	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/neighbor"
	"github.com/ydarma/fluent-data/space"
)

// Model owns the ball graph and the geometry hook used to compare an
// incoming point against ball centers.
type Model[P any] struct {
	sqDist space.SqDistFunc[P]
	graph  *ballgraph.Graph[P]
}

// New returns an empty model bound to sqDist.
func New[P any](sqDist space.SqDistFunc[P]) *Model[P] {
	return &Model[P]{sqDist: sqDist, graph: ballgraph.New[P]()}
}

// Load bulk-loads balls as isolated nodes for a warm start. No edges are
// reconstructed — edges are purely a function of the future stream, so a
// freshly loaded model starts with none.
//
// Complexity: O(n).
func Load[P any](sqDist space.SqDistFunc[P], balls []ballgraph.Ball[P]) *Model[P] {
	m := New[P](sqDist)
	for _, b := range balls {
		m.graph.AddNode(b)
	}

	return m
}

// Graph exposes the underlying ball graph for the clustering algorithm
// and read-only diagnostics (package topology). Callers outside package
// cluster must not mutate structure through it.
func (m *Model[P]) Graph() *ballgraph.Graph[P] { return m.graph }

// IsEmpty reports whether the model holds no balls yet.
func (m *Model[P]) IsEmpty() bool { return m.graph.NodeCount() == 0 }

// NearestTwo returns the two nearest balls to q, delegating to
// package neighbor over every live ball.
//
// Complexity: O(n) where n is the current ball count.
func (m *Model[P]) NearestTwo(q P) neighbor.Neighborhood[ballgraph.Entry[P]] {
	entries := m.graph.Entries()

	return neighbor.GetNeighborhood(q, entries, func(q P, e ballgraph.Entry[P]) float64 {
		return m.sqDist(q, e.Ball.Center)
	})
}

// IterBalls returns every live ball in stable (id-ascending) order, for
// serialization.
func (m *Model[P]) IterBalls() []ballgraph.Entry[P] {
	return m.graph.Entries()
}

// File: cluster.go
// Role: the online per-point update — bootstrap, decay, absorption, edge
// maintenance, split, and greedy merge resolution — run directly against
// a model.Model's graph.
package cluster

import (
	"math"

	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/model"
	"github.com/ydarma/fluent-data/space"
)

// Update absorbs point p, observed at virtual time t, into m in place.
// sqDist and combine are the geometry hooks for point type P; t must be
// non-decreasing across calls for a given model (decay assumes Δt ≥ 0).
//
// Complexity: O(n) for the nearest-two query over n live balls, plus
// O(deg) work for decay and merge resolution around the winner.
func Update[P any](m *model.Model[P], sqDist space.SqDistFunc[P], combine space.CombineFunc[P], params Params, p P, t int64) {
	g := m.Graph()

	// Step A — bootstrap.
	if m.IsEmpty() {
		g.AddNode(ballgraph.Ball[P]{Center: p, Weight: 1, Radius: 0, LastUpdate: t})

		return
	}

	// Step B — nearest-two query.
	nb := m.NearestTwo(p)
	winner := nb.First.Candidate
	dA := nb.First.SqDist
	aID := winner.ID

	var bID ballgraph.NodeID
	hasB := nb.IsTwo()
	if hasB {
		bID = nb.Second.Candidate.ID
	}

	// Step C — decay the winner and its neighbors.
	decay(winner.Ball, t, params.DecayFactor)
	for _, nid := range g.Neighbors(aID) {
		nBall, err := g.Node(nid)
		if err != nil {
			continue
		}
		decay(nBall, t, params.DecayFactor)
		pruneIfBelow(g, nid, nBall, params)
	}

	preWeight := winner.Ball.Weight
	preRadius := winner.Ball.Radius
	preCenter := winner.Ball.Center

	// Step D — absorption into the winner.
	absorb(winner.Ball, combine, p, dA, t)

	// Step E — edge maintenance.
	if hasB {
		_ = g.AddEdge(aID, bID)
	}

	// Step F — split test. A runner-up b is not required to split: it
	// only decides whether the new ball also gets wired to b. A ball
	// still at its pre-split radius of exactly 0 has no meaningful
	// distance/radius ratio to test against — splitting on it would
	// fire on the very next point absorbed by any freshly bootstrapped
	// ball, which is not what SPLIT_THRESHOLD means.
	x := aID
	splitFrom := ballgraph.NodeID("")
	if preRadius > 0 && dA > params.SplitThreshold*preRadius && preWeight >= params.MinWeight {
		// The absorption just performed was logically misattributed:
		// restore the winner to its pre-absorption state and found a new
		// ball with the point instead.
		winner.Ball.Center = preCenter
		winner.Ball.Radius = preRadius
		winner.Ball.Weight = preWeight

		newID := g.AddNode(ballgraph.Ball[P]{Center: p, Weight: 1, Radius: dA, LastUpdate: t})
		_ = g.AddEdge(aID, newID)
		if hasB {
			_ = g.AddEdge(newID, bID)
		}
		x = newID
		splitFrom = aID
	}

	// Step G — greedy merge resolution. A freshly split ball's radius is
	// set to its distance from the ball it split from, so that edge
	// would always satisfy the merge test on its own (radius_old ≥ 0
	// only adds slack) — evaluating it here would undo the split within
	// the same update. splitFrom is excluded from this pass only; a
	// later update is free to merge them back if they drift close.
	mergeResolve(g, sqDist, combine, params, x, splitFrom)

	pruneIfBelow(g, x, mustNode(g, x), params)
}

// decay applies lazy multiplicative weight decay and advances
// last_update to t. Radius is left untouched: it only moves on
// absorption or merge.
func decay[P any](b *ballgraph.Ball[P], t int64, factor float64) {
	if dt := float64(t - b.LastUpdate); dt != 0 {
		b.Weight *= math.Pow(factor, dt)
	}
	b.LastUpdate = t
}

// absorb folds point p, at squared distance d from b's center, into b as
// one unit of weight: a running weighted mean for both center and
// radius.
func absorb[P any](b *ballgraph.Ball[P], combine space.CombineFunc[P], p P, d float64, t int64) {
	w := b.Weight
	b.Center = combine(b.Center, w, p, 1)
	b.Radius = (w*b.Radius + d) / (w + 1)
	b.Weight = w + 1
	b.LastUpdate = t
}

// mergeResolve repeatedly merges x's graph neighbors into x while some
// adjacent pair is close enough, in deterministic neighbor order, until
// none qualifies. skip, if non-empty, is excluded from consideration —
// used to keep a just-performed split from being undone in the same pass.
func mergeResolve[P any](g *ballgraph.Graph[P], sqDist space.SqDistFunc[P], combine space.CombineFunc[P], params Params, x, skip ballgraph.NodeID) {
	for {
		xBall, err := g.Node(x)
		if err != nil {
			return
		}

		merged := false
		for _, y := range g.Neighbors(x) {
			if y == skip {
				continue
			}

			yBall, err := g.Node(y)
			if err != nil {
				continue
			}

			dxy := sqDist(xBall.Center, yBall.Center)
			if dxy >= params.MergeThreshold*(xBall.Radius+yBall.Radius) {
				continue
			}

			mergeInto(g, xBall, yBall, combine, dxy, x, y)
			merged = true

			break
		}

		if !merged {
			return
		}
	}
}

// mergeInto folds y's mass and radius into x (variance-preserving,
// including the parallel-axis term for the center displacement), re-homes
// y's other edges onto x, and removes y.
func mergeInto[P any](g *ballgraph.Graph[P], xBall, yBall *ballgraph.Ball[P], combine space.CombineFunc[P], dxy float64, x, y ballgraph.NodeID) {
	wx, wy := xBall.Weight, yBall.Weight
	total := wx + wy

	newCenter := combine(xBall.Center, wx, yBall.Center, wy)
	newRadius := (wx*xBall.Radius + wy*yBall.Radius + wx*wy*dxy/total) / total

	for _, z := range g.Neighbors(y) {
		if z == x {
			continue
		}
		_ = g.AddEdge(x, z)
	}
	_ = g.RemoveNode(y)

	xBall.Center = newCenter
	xBall.Radius = newRadius
	xBall.Weight = total
}

// pruneIfBelow removes id when pruning is enabled and its current weight
// has decayed under the configured threshold. Off by default. Never
// empties the graph: the model must hold at least one ball once any
// point has been ingested, so the last surviving ball is exempt.
func pruneIfBelow[P any](g *ballgraph.Graph[P], id ballgraph.NodeID, b *ballgraph.Ball[P], params Params) {
	if params.PruneThreshold <= 0 || b == nil {
		return
	}
	if b.Weight < params.PruneThreshold && g.NodeCount() > 1 {
		_ = g.RemoveNode(id)
	}
}

// mustNode returns id's ball, or nil if it no longer exists (e.g. it was
// the last survivor merged away — which cannot happen for x itself, but
// defensive lookup keeps this helper safe to call unconditionally).
func mustNode[P any](g *ballgraph.Graph[P], id ballgraph.NodeID) *ballgraph.Ball[P] {
	b, err := g.Node(id)
	if err != nil {
		return nil
	}

	return b
}

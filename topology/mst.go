// File: mst.go
// Role: minimum spanning forest diagnostic, via Kruskal's algorithm with
// a union-find disjoint-set.
package topology

import (
	"sort"

	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/space"
)

// Edge is one link of a spanning forest: two node ids and the squared
// distance between their ball centers.
type Edge[P any] struct {
	From, To NodeID
	Weight   float64
}

// NodeID re-exports ballgraph.NodeID for callers that only import
// package topology.
type NodeID = ballgraph.NodeID

// MST computes the minimum spanning forest of g, weighting each edge by
// sqDist between its endpoints' centers. Ball graphs are routinely
// disconnected — each connected component is a cluster in its own right
// — so this returns one tree per component rather than erroring on
// disconnection; totalWeight sums every tree's weight.
//
// Complexity: O(E log E + α(V)·E).
func MST[P any](g *ballgraph.Graph[P], sqDist space.SqDistFunc[P]) ([]Edge[P], float64, error) {
	snap := g.Snapshot()

	ids := snap.Nodes()
	if len(ids) == 0 {
		return nil, 0, nil
	}

	parent := make(map[ballgraph.NodeID]ballgraph.NodeID, len(ids))
	rank := make(map[ballgraph.NodeID]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}

	var find func(ballgraph.NodeID) ballgraph.NodeID
	find = func(u ballgraph.NodeID) ballgraph.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v ballgraph.NodeID) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	candidates := collectEdges(snap, ids, sqDist)
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Weight < candidates[j].Weight })

	forest := make([]Edge[P], 0, len(ids)-1)
	var total float64
	for _, e := range candidates {
		if union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
		}
	}

	return forest, total, nil
}

// collectEdges gathers one Edge per undirected adjacency pair (each pair
// visited once, from the lexicographically smaller endpoint), weighted
// by squared center distance.
func collectEdges[P any](g *ballgraph.Graph[P], ids []ballgraph.NodeID, sqDist space.SqDistFunc[P]) []Edge[P] {
	var edges []Edge[P]
	for _, id := range ids {
		ball, err := g.Node(id)
		if err != nil {
			continue
		}
		for _, nbr := range g.Neighbors(id) {
			if nbr <= id {
				continue
			}
			nBall, err := g.Node(nbr)
			if err != nil {
				continue
			}
			edges = append(edges, Edge[P]{From: id, To: nbr, Weight: sqDist(ball.Center, nBall.Center)})
		}
	}

	return edges
}

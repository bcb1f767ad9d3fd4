// Package ballgraph implements the undirected graph of balls that backs
// the clustering model: nodes are balls with stable, generational,
// never-reused identifiers; edges record "topological neighbor" pairs
// with no further identity of their own (no weight, no direction).
//
// Adapted from github.com/katalvlaran/lvlath's core.Graph: the same
// two-mutex split (muNodes for the node catalog, muAdj for adjacency),
// the same sort-stabilized deterministic enumeration, and the same
// atomic monotonic textual-id generator. Edges here are simpler than
// core's — existence only, no edge identity, no directedness — since
// the clustering spec never needs more than "are these two balls
// currently topological neighbors."
package ballgraph

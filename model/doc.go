// Package model is a thin facade over a ballgraph.Graph: it owns the
// graph, knows the geometry hook used to compare points against ball
// centers, and provides the handful of read operations the clustering
// algorithm and its collaborators need — nearest-two lookup, bulk load
// for a warm start, and stable iteration for serialization.
//
// No algorithmic logic lives here, following core/api.go's precedent:
// constructors and read-only getters only.
package model

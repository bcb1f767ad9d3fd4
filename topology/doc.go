// Package topology provides read-only diagnostics over a ballgraph.Graph:
// connected components and a minimum spanning forest weighted by
// center-to-center squared distance. Neither is part of the per-point
// update path. Both take a Snapshot of the graph under its locks and walk
// the copy; ball fields are written in place by cluster.Update without
// those locks, so calling either while an update is running is not
// synchronized with it.
//
// Adapted from algorithms.BFS (the walker-driven traversal shape) and
// prim_kruskal.Kruskal (sorted-edges, union-find MST), generalized from
// core.Graph's string vertex ids and weighted core.Edge to ballgraph's
// generic NodeID and on-the-fly squared-distance edge weight.
package topology

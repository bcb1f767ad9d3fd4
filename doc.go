// Package fluentdata is a streaming ball-clustering engine: it turns an
// unbounded sequence of points into a small, live set of weighted balls
// that approximate the stream's density, each ball shrinking with age so
// the model tracks drift rather than accumulating every point it has ever
// seen.
//
// The module is organized as a small stack of packages, each owning one
// layer of the algorithm:
//
//	space/       — point geometry hooks (squared distance, weighted combine)
//	neighbor/    — nearest-two-ball query over a point
//	ballgraph/   — the mutable adjacency graph of balls
//	model/       — a ballgraph plus the geometry hook it was built with
//	cluster/     — the online update: decay, absorb, split, merge
//	topology/    — read-only diagnostics over a model's graph (components, MST)
//	wire/        — JSON point/model codec
//	service/     — stdio and HTTP drivers around cluster.Update
//	cmd/fluentd/ — the command-line entry point
//
// See cmd/fluentd for the binary.
package fluentdata

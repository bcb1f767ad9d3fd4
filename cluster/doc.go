// Package cluster implements the online ball-clustering update: the
// per-point sequence of decay, absorption, edge maintenance, split, and
// merge that turns a point stream into a live model.Model.
//
// The package follows the style used elsewhere in this module for
// stateful graph algorithms: a package-level entry point taking the
// graph-owning type and the new input, with every structural mutation
// routed through the graph's own Add/Remove methods rather than reaching
// into its internals directly. Update itself has no return value: the
// algorithm's preconditions are guaranteed by its own bootstrap and
// nearest-two query, so it can never fail.
package cluster

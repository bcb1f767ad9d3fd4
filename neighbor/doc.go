// Package neighbor implements the nearest-two-candidates primitive used
// both for assignment (the winner ball) and for graph edge maintenance
// (the runner-up). Given a query point and a finite sequence of
// candidates, it returns None, One, or Two candidates ordered by
// ascending distance, via a single streaming min-two reduction —
// no sorting, no second pass.
package neighbor

package space

// SqDistFunc returns the squared distance between two points of type P.
//
// Contract:
//   - Non-negative.
//   - Symmetric: SqDist(a, b) == SqDist(b, a).
//   - Zero iff a and b are equal under the caller's notion of equality.
//   - Pure: no side effects, safe to call repeatedly with the same inputs.
type SqDistFunc[P any] func(a, b P) float64

// CombineFunc returns the weight-weighted barycenter of two points.
//
// Contract:
//   - Combine(x, w, x, w') == x for any w, w' (a point combined with
//     itself at any weights is unchanged).
//   - Combine(a, 0, b, w) == b (zero weight on the first point degenerates
//     to the second point).
//   - Pure: no side effects, must not mutate a or b.
type CombineFunc[P any] func(a P, w1 float64, b P, w2 float64) P

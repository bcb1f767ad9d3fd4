package space

import "gonum.org/v1/gonum/floats"

// Vector is the default point type: a fixed-dimension real vector.
// Dimension is whatever the first accepted point establishes; callers are
// responsible for rejecting dimension mismatches before they reach the
// core (see package wire).
type Vector []float64

// SqDistVector returns the squared Euclidean distance between a and b.
//
// Implemented without a square root: the difference vector is formed with
// floats.SubTo and reduced with floats.Dot, i.e. sum((a-b)^2). Panics if a
// and b differ in length, matching floats' own panic-on-length-mismatch
// convention; callers pass already-dimension-checked vectors.
//
// Complexity: O(n) where n = len(a).
func SqDistVector(a, b Vector) float64 {
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)

	return floats.Dot(diff, diff)
}

// CombineVector returns the weighted barycenter (w1*a + w2*b) / (w1+w2).
//
// Special cases required by the CombineFunc contract:
//   - w1+w2 == 0: returns b unchanged (avoids a division by zero; this
//     only arises from degenerate zero-weight callers).
//   - w1 == 0: returns a copy of b, so the result is b exactly rather
//     than w2*b rescaled by 1/w2, which can round.
//
// Complexity: O(n).
func CombineVector(a Vector, w1 float64, b Vector, w2 float64) Vector {
	total := w1 + w2
	if total == 0 || w1 == 0 {
		out := make(Vector, len(b))
		copy(out, b)

		return out
	}

	scaledA := make([]float64, len(a))
	copy(scaledA, a)
	floats.Scale(w1, scaledA)

	out := make([]float64, len(a))
	floats.AddScaledTo(out, scaledA, w2, b)
	floats.Scale(1/total, out)

	return out
}

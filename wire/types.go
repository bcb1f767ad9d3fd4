package wire

import "errors"

// Sentinel errors for wire decoding.
var (
	// ErrMalformedPoint indicates a point record that did not decode
	// into a JSON array of numbers.
	ErrMalformedPoint = errors.New("wire: malformed point")

	// ErrNonFinitePoint indicates a point containing NaN or an infinity.
	ErrNonFinitePoint = errors.New("wire: point has a non-finite coordinate")

	// ErrDimensionMismatch indicates a point whose length differs from
	// the dimension the first accepted point established.
	ErrDimensionMismatch = errors.New("wire: point dimension mismatch")
)

// Ball is the wire representation of a ballgraph.Ball: center, radius,
// and weight only — no edges, no last-update, no id.
type Ball struct {
	Center []float64 `json:"center"`
	Radius float64   `json:"radius"`
	Weight float64   `json:"weight"`
}

package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/space"
)

// DecodePoint decodes one point record: a JSON array of finite numbers.
func DecodePoint(raw []byte) (space.Vector, error) {
	var xs []float64
	if err := json.Unmarshal(raw, &xs); err != nil {
		// encoding/json refuses a number literal outside float64's range
		// (e.g. 1e400) rather than decoding it to an infinity.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Value, "number ") {
			return nil, ErrNonFinitePoint
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNonFinitePoint
		}
	}

	return space.Vector(xs), nil
}

// PointDecoder decodes a stream of point records, pinning the dimension
// to whatever the first accepted point establishes and rejecting any
// later point of a different dimension. The model is left untouched by
// a rejected point — the caller is expected to skip it and continue.
type PointDecoder struct {
	dim    int
	pinned bool
}

// Decode decodes one record against the decoder's pinned dimension.
func (d *PointDecoder) Decode(raw []byte) (space.Vector, error) {
	p, err := DecodePoint(raw)
	if err != nil {
		return nil, err
	}
	if !d.pinned {
		d.dim = len(p)
		d.pinned = true
	} else if len(p) != d.dim {
		return nil, ErrDimensionMismatch
	}

	return p, nil
}

// EncodeModel serializes every live ball as a JSON array, per the model
// wire format. An empty model encodes as "[]", never "null".
func EncodeModel(entries []ballgraph.Entry[space.Vector]) ([]byte, error) {
	balls := make([]Ball, len(entries))
	for i, e := range entries {
		center := make([]float64, len(e.Ball.Center))
		copy(center, e.Ball.Center)
		balls[i] = Ball{Center: center, Radius: e.Ball.Radius, Weight: e.Ball.Weight}
	}

	return json.Marshal(balls)
}

// DecodeModel decodes a previously serialized model into isolated balls,
// suitable for model.Load.
func DecodeModel(raw []byte) ([]ballgraph.Ball[space.Vector], error) {
	var balls []Ball
	if err := json.Unmarshal(raw, &balls); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
	}

	out := make([]ballgraph.Ball[space.Vector], len(balls))
	for i, b := range balls {
		out[i] = ballgraph.Ball[space.Vector]{Center: space.Vector(b.Center), Radius: b.Radius, Weight: b.Weight}
	}

	return out, nil
}

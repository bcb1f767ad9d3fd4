package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydarma/fluent-data/ballgraph"
	"github.com/ydarma/fluent-data/space"
	"github.com/ydarma/fluent-data/wire"
)

func TestDecodePoint(t *testing.T) {
	p, err := wire.DecodePoint([]byte(`[1, 2.5, -3]`))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, []float64(p))
}

func TestDecodePointMalformed(t *testing.T) {
	_, err := wire.DecodePoint([]byte(`{"not":"a point"}`))
	assert.ErrorIs(t, err, wire.ErrMalformedPoint)
}

func TestDecodePointNonFinite(t *testing.T) {
	_, err := wire.DecodePoint([]byte(`[1, 1e400, 3]`))
	assert.ErrorIs(t, err, wire.ErrNonFinitePoint)
}

func TestPointDecoderDimensionMismatch(t *testing.T) {
	d := &wire.PointDecoder{}
	_, err := d.Decode([]byte(`[1, 2]`))
	require.NoError(t, err)

	_, err = d.Decode([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, wire.ErrDimensionMismatch)
}

func TestEncodeModelEmpty(t *testing.T) {
	out, err := wire.EncodeModel(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestEncodeModelRoundTrip(t *testing.T) {
	balls := []*ballgraph.Ball[space.Vector]{
		{Center: space.Vector{0, 0}, Radius: 0, Weight: 1},
		{Center: space.Vector{1, 1}, Radius: 0.5, Weight: 3},
	}
	entries := []ballgraph.Entry[space.Vector]{
		{ID: "b1", Ball: balls[0]},
		{ID: "b2", Ball: balls[1]},
	}

	out, err := wire.EncodeModel(entries)
	require.NoError(t, err)

	decoded, err := wire.DecodeModel(out)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.InDeltaSlice(t, []float64{0, 0}, decoded[0].Center, 1e-9)
	assert.Equal(t, 1.0, decoded[0].Weight)
	assert.InDeltaSlice(t, []float64{1, 1}, decoded[1].Center, 1e-9)
	assert.Equal(t, 0.5, decoded[1].Radius)
}

func TestDecodeModelMalformed(t *testing.T) {
	_, err := wire.DecodeModel([]byte(`not json`))
	assert.ErrorIs(t, err, wire.ErrMalformedPoint)
}

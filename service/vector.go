// File: vector.go
// Role: binds Streamer to the default real-vector geometry and the
// wire package's JSON codec.
package service

import (
	"io"

	"github.com/ydarma/fluent-data/cluster"
	"github.com/ydarma/fluent-data/model"
	"github.com/ydarma/fluent-data/space"
	"github.com/ydarma/fluent-data/wire"
)

// NewVectorStreamer builds a Streamer[space.Vector] wired to the JSON
// point/model formats in package wire. It is the constructor cmd/fluentd
// uses for both the stdio and HTTP service modes.
func NewVectorStreamer(source PointSource, sink ModelSink, params cluster.Params) *Streamer[space.Vector] {
	m := model.New[space.Vector](space.SqDistVector)
	algo := cluster.New[space.Vector](space.SqDistVector, space.CombineVector, cluster.WithParams(params))
	dec := &wire.PointDecoder{}

	return NewStreamer[space.Vector](
		source, sink, m, algo,
		func(line string) (space.Vector, error) { return dec.Decode([]byte(line)) },
		func(m *model.Model[space.Vector]) (string, error) {
			out, err := wire.EncodeModel(m.IterBalls())

			return string(out), err
		},
	)
}

// StdioStreamer builds a vector Streamer reading points from r and
// writing models to w — the CLI's default mode.
func StdioStreamer(r io.Reader, w io.Writer, params cluster.Params) *Streamer[space.Vector] {
	return NewVectorStreamer(NewStdioSource(r), NewStdioSink(w), params)
}

// File: streamer.go
// Role: the point-source → update → model-sink run loop.
package service

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ydarma/fluent-data/cluster"
	"github.com/ydarma/fluent-data/model"
)

// PointSource produces textual point records one at a time. Next returns
// io.EOF on a clean end of stream.
type PointSource interface {
	Next() (string, error)
}

// ModelSink consumes textual model records, one per update.
type ModelSink interface {
	Write(string) error
}

// Streamer owns a model and runs the read → update → write loop against
// it. Decode and Encode bind the wire representation to the model's
// point type P; Logger receives debug records for skipped points.
type Streamer[P any] struct {
	Source PointSource
	Sink   ModelSink
	Model  *model.Model[P]
	Algo   *cluster.Algorithm[P]
	Decode func(string) (P, error)
	Encode func(*model.Model[P]) (string, error)
	Logger *slog.Logger

	t int64
}

// NewStreamer builds a Streamer whose Logger is slog.Default(); callers
// may replace the Logger field afterwards.
func NewStreamer[P any](source PointSource, sink ModelSink, m *model.Model[P], algo *cluster.Algorithm[P], decode func(string) (P, error), encode func(*model.Model[P]) (string, error)) *Streamer[P] {
	return &Streamer[P]{
		Source: source,
		Sink:   sink,
		Model:  m,
		Algo:   algo,
		Decode: decode,
		Encode: encode,
		Logger: slog.Default(),
	}
}

// Run drives the loop until the source reports a clean end of stream
// (io.EOF, returned as nil) or a fatal error occurs: a transient source
// read failure or a sink write failure, both propagated to the caller
// per the error-handling policy. Malformed or dimension-mismatched
// points are logged at debug and skipped; the model is left unchanged by
// them.
func (s *Streamer[P]) Run() error {
	for {
		line, err := s.Source.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		p, err := s.Decode(line)
		if err != nil {
			s.Logger.Debug("skipping point", "error", err)

			continue
		}

		s.t++
		s.Algo.Update(s.Model, p, s.t)

		out, err := s.Encode(s.Model)
		if err != nil {
			return err
		}
		if err := s.Sink.Write(out); err != nil {
			return err
		}
	}
}

// File: backend.go
// Role: the "--service" HTTP transport — POST /points ingests one JSON
// point per request body, GET /model returns the latest serialized
// model. Substitutes request/response framing for a duplex websocket
// pair: same point-in, model-out contract, different plumbing.
package service

import (
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Backend wires an HTTP ingestion/broadcast server around a point
// channel and the latest serialized model.
type Backend struct {
	router *gin.Engine
	points chan string
	done   chan struct{}

	mu     sync.RWMutex
	latest string
}

// NewBackend returns a Backend with its routes registered.
func NewBackend() *Backend {
	b := &Backend{
		points: make(chan string, 256),
		done:   make(chan struct{}),
		latest: "[]",
	}

	r := gin.Default()
	r.POST("/points", b.handleIngest)
	r.GET("/model", b.handleModel)
	b.router = r

	return b
}

// Source returns the PointSource fed by POST /points.
func (b *Backend) Source() PointSource {
	return &channelSource{ch: b.points, done: b.done}
}

// Sink returns the ModelSink that GET /model reads from.
func (b *Backend) Sink() ModelSink {
	return sinkFunc(func(line string) error {
		b.mu.Lock()
		b.latest = line
		b.mu.Unlock()

		return nil
	})
}

// Run blocks serving HTTP on addr, per gin.Engine.Run.
func (b *Backend) Run(addr string) error {
	return b.router.Run(addr)
}

// Close signals the point source to report a clean end of stream,
// letting a Streamer.Run using it return.
func (b *Backend) Close() {
	close(b.done)
}

func (b *Backend) handleIngest(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	select {
	case b.points <- string(body):
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingest queue full"})
	}
}

func (b *Backend) handleModel(c *gin.Context) {
	b.mu.RLock()
	latest := b.latest
	b.mu.RUnlock()

	c.Data(http.StatusOK, "application/json", []byte(latest))
}

// channelSource adapts a point channel to PointSource, reporting io.EOF
// once done is closed.
type channelSource struct {
	ch   <-chan string
	done <-chan struct{}
}

func (s *channelSource) Next() (string, error) {
	select {
	case line := <-s.ch:
		return line, nil
	case <-s.done:
		return "", io.EOF
	}
}

// sinkFunc adapts a plain function to ModelSink.
type sinkFunc func(string) error

func (f sinkFunc) Write(line string) error { return f(line) }

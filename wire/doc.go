// Package wire implements the JSON wire formats for the default real-
// vector geometry: a point is a JSON array of finite numbers, and a
// model is a JSON array of ball objects (center/radius/weight). Graph
// edges are never serialized — they are recomputed lazily as the stream
// continues, so a loaded model always starts edgeless.
package wire

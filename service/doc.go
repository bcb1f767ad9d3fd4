// Package service drives a model.Model from a point source to a model
// sink, one point at a time: read point, update, emit model. Stdio
// wires the default CLI mode to standard input/output; Backend wires an
// HTTP ingestion/broadcast server, substituting request/response framing
// for the duplex websocket transport described for the externally
// facing "--service" mode — there is no websocket library to build that
// transport on, so a point-in, model-out HTTP contract fills the same
// role.
package service

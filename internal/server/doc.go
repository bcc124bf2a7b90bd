// Package server runs the policy desk transports: the chi HTTP API with its
// change stream, and the gRPC health endpoint. It owns the shutdown order
// and releases storage once both transports have stopped.
package server

// Package http implements the local HTTP API of the daemon.
//
// It exposes route wiring, request handlers, and middleware for the
// loopback-facing REST surface: itinerary CRUD, plan file export/import,
// location catalog access, and the sync trigger with its status projection.
// Cross-cutting concerns such as request tracing and access logging are
// handled here before requests are delegated to the service layer.
package http

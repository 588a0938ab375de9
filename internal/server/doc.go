// Package server provides the HTTP server for the taskpool daemon.
//
// The server uses the Gin web framework and supports two modes of operation:
// development and production (release-mode Gin, quieter logging).
//
// # Middleware Stack
//
//	┌─────────────────────────────────────────────────────────┐
//	│  Logger (request/response logging via zap)              │
//	│  Recovery (panic recovery with zap logging)             │
//	└─────────────────────────────────────────────────────────┘
//
// # Router
//
//	/health          - liveness probe
//	/api/v1/...      - handlers package routes
//
// The server is an observability surface over the in-process pool: it never
// receives task code, only workload names and pool statistics.
package server

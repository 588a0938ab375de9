// Package handlers implements the HTTP API layer of the taskpool daemon.
//
// Handlers delegate business logic to the services layer and focus on
// request validation, parameter parsing, error mapping and model-to-API
// conversion. The surface is observability plus an in-process trigger: tasks
// are never transported over the network, only workload names that the
// runner resolves against its local registry.
//
// # Routes
//
//	┌────────┬────────────┬────────────────────────────────────────┐
//	│ Method │ Path       │ Description                            │
//	├────────┼────────────┼────────────────────────────────────────┤
//	│ GET    │ /stats     │ Live pool counters                     │
//	│ GET    │ /runs      │ Run history (filter, paginate)         │
//	│ POST   │ /runs      │ Execute a named batch, return summary  │
//	└────────┴────────────┴────────────────────────────────────────┘
//
// All routes are mounted under /api/v1 by the server package.
package handlers

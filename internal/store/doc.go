// Package store persists batch-run history using DuckDB.
//
// The store records one row per executed batch after the fact; it never
// holds live task state, which exists only inside the pool for the lifetime
// of the process.
//
// # Schema
//
//	runs
//	├── id          VARCHAR (UUID, primary key)
//	├── workload    VARCHAR
//	├── tasks       INTEGER
//	├── completed   INTEGER
//	├── cancelled   INTEGER
//	├── failed      INTEGER
//	├── duration_ms BIGINT
//	└── created_at  TIMESTAMP (defaults to now())
//
// # Layout
//
// Store aggregates the repositories and owns the *sql.DB handle. Writes use
// plain statements from queries.go; reads go through squirrel builders so
// callers can compose filters:
//
//	runs, err := s.Runs().List(ctx,
//	    store.ByWorkloads("factorial"),
//	    store.WithDefaultSort(),
//	    store.WithLimit(20),
//	)
//
// NewDB opens the database file; ":memory:" gives an ephemeral instance used
// throughout the tests. Migrations live in the migrations subpackage and are
// idempotent.
package store

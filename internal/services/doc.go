// Package services implements the business logic between the HTTP/CLI
// surfaces and the pool.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────┐
//	│                  Handlers / CLI commands                  │
//	└───────────────────────────────────────────────────────────┘
//	                  │                        │
//	                  ▼                        ▼
//	┌──────────────────────────┐  ┌──────────────────────────┐
//	│          Runner          │  │          Report          │
//	│  - resolves workloads    │  │  - reads run history     │
//	│  - submits batches       │  │  - writes .xlsx          │
//	│  - waits on futures      │  └────────────┬─────────────┘
//	│  - persists run summary  │               │
//	└───────┬───────────┬──────┘               │
//	        │           │                      │
//	        ▼           ▼                      ▼
//	┌──────────────┐  ┌────────────────────────────────────────┐
//	│   pkg/pool   │  │              internal/store            │
//	└──────────────┘  └────────────────────────────────────────┘
//
// # Runner
//
// Runner owns one long-lived pool for the whole process. RunBatch resolves
// the workload by name, submits one task per argument, waits for every
// future and persists a models.Run summary. Task-level failures never fail
// the batch; they show up in the summary's counters. With Retry set, each
// task goes through pkg/retry instead, so transient errors consume
// resubmissions before counting as failed.
//
// # Report
//
// Report exports the stored run history to an Excel workbook, one row per
// run, newest first.
package services

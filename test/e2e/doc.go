// Package e2e holds the end-to-end suite. Unlike the unit tests, specs here
// drive the assembled system: the production router with its middleware, the
// run-history store behind real migrations, and a live worker pool, all in
// one process behind an httptest listener.
//
// Run it like any other package:
//
//	go test ./test/e2e
package e2e

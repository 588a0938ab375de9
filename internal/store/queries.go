package store

// Run queries
const (
	queryInsertRun = `
		INSERT INTO runs (id, workload, tasks, completed, cancelled, failed, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetRun = `
		SELECT id, workload, tasks, completed, cancelled, failed, duration_ms, created_at
		FROM runs WHERE id = ?`
)

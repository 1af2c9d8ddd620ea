package journal

// Schema DDL. Tables are created on first open and never dropped; the
// journal accumulates runs across invocations.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    input TEXT NOT NULL,
    output TEXT NOT NULL,
    mode TEXT NOT NULL,
    format TEXT NOT NULL,
    status TEXT NOT NULL,
    commands INTEGER NOT NULL DEFAULT 0,
    created INTEGER NOT NULL DEFAULT 0,
    pushed INTEGER NOT NULL DEFAULT 0,
    popped INTEGER NOT NULL DEFAULT 0,
    errors INTEGER NOT NULL DEFAULT 0,
    started_at TEXT NOT NULL,
    finished_at TEXT
);`

	createEntries = `CREATE TABLE IF NOT EXISTS entries (
    run_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    verb TEXT NOT NULL,
    name TEXT NOT NULL,
    arg TEXT,
    outcome TEXT NOT NULL,
    value TEXT,
    PRIMARY KEY (run_id, seq),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	createIndexes = `CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`
)

var schemaStatements = []string{
	createRuns,
	createEntries,
	createIndexes,
}

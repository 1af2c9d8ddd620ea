// Package journal records interpreter runs in a SQLite database: one row
// per run with its counters and one row per processed command. The
// journal is an audit log; containers are never restored from it.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/simplelist/internal/processor"
	"github.com/mesh-intelligence/simplelist/pkg/types"
)

// timeLayout is fixed width so stored timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// RunInfo describes a run when it begins.
type RunInfo struct {
	Input  string
	Output string
	Mode   string
	Format string
}

// Run is a journaled run.
type Run struct {
	RunID      string
	Input      string
	Output     string
	Mode       string
	Format     string
	Status     string
	Stats      processor.Stats
	StartedAt  time.Time
	FinishedAt *time.Time
}

// Entry is a journaled command.
type Entry struct {
	Seq     int
	Verb    string
	Name    string
	Arg     string
	Outcome string
	Value   string
}

// Journal is an open journal database. At most one run is active at a time;
// its entries are written in one transaction committed by EndRun.
type Journal struct {
	mu    sync.Mutex
	path  string
	db    *sql.DB
	tx    *sql.Tx
	runID string
}

// Open opens or creates the journal at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// One connection keeps the run transaction and reads on the same handle.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply journal schema: %w", err)
		}
	}

	return &Journal{path: path, db: db}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string { return j.path }

// BeginRun starts a run and returns its UUID v7 identifier.
// Returns ErrRunActive if a run is already in progress.
func (j *Journal) BeginRun(ctx context.Context, info RunInfo) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return "", types.ErrJournalClosed
	}
	if j.tx != nil {
		return "", types.ErrRunActive
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}

	// The transaction outlives cancellation of ctx so EndRun can still commit.
	tx, err := j.db.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, input, output, mode, format, status, started_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id.String(), info.Input, info.Output, info.Mode, info.Format, StatusRunning,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("inserting run: %w", err)
	}

	j.tx = tx
	j.runID = id.String()
	return j.runID, nil
}

// Record journals one processed command. It satisfies processor.Recorder.
// Returns ErrNoActiveRun outside BeginRun/EndRun.
func (j *Journal) Record(ctx context.Context, e processor.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.tx == nil {
		return types.ErrNoActiveRun
	}

	var arg, value sql.NullString
	if e.Command.HasArg {
		arg = sql.NullString{String: e.Command.Arg, Valid: true}
	}
	if e.Popped {
		value = sql.NullString{String: e.Value, Valid: true}
	}

	_, err := j.tx.ExecContext(ctx,
		"INSERT INTO entries (run_id, seq, verb, name, arg, outcome, value) VALUES (?, ?, ?, ?, ?, ?, ?)",
		j.runID, e.Seq, string(e.Command.Verb), e.Command.Name, arg, e.Outcome(), value,
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// EndRun stores the run's counters and status and commits its entries.
// A non-nil runErr marks the run failed.
func (j *Journal) EndRun(ctx context.Context, stats processor.Stats, runErr error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.tx == nil {
		return types.ErrNoActiveRun
	}
	tx := j.tx
	j.tx = nil
	defer tx.Rollback()

	status := StatusCompleted
	if runErr != nil {
		status = StatusFailed
	}

	// The run context may already be cancelled; the closing update still has to land.
	ctx = context.WithoutCancel(ctx)
	_, err := tx.ExecContext(ctx,
		`UPDATE runs SET status = ?, commands = ?, created = ?, pushed = ?, popped = ?, errors = ?, finished_at = ?
		 WHERE run_id = ?`,
		status, stats.Commands, stats.Created, stats.Pushed, stats.Popped, stats.Errors,
		time.Now().UTC().Format(timeLayout), j.runID,
	)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A limit of zero or
// less returns all runs.
func (j *Journal) Runs(ctx context.Context, limit int) ([]Run, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil, types.ErrJournalClosed
	}

	query := `SELECT run_id, input, output, mode, format, status, commands, created, pushed, popped, errors, started_at, finished_at
		FROM runs ORDER BY started_at DESC, run_id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r        Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&r.RunID, &r.Input, &r.Output, &r.Mode, &r.Format, &r.Status,
			&r.Stats.Commands, &r.Stats.Created, &r.Stats.Pushed, &r.Stats.Popped, &r.Stats.Errors,
			&started, &finished); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		if finished.Valid {
			t, err := time.Parse(timeLayout, finished.String)
			if err != nil {
				return nil, fmt.Errorf("parsing finished_at: %w", err)
			}
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Entries returns the commands journaled for runID in input order.
func (j *Journal) Entries(ctx context.Context, runID string) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil, types.ErrJournalClosed
	}

	rows, err := j.db.QueryContext(ctx,
		"SELECT seq, verb, name, arg, outcome, value FROM entries WHERE run_id = ? ORDER BY seq", runID)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			arg, value sql.NullString
		)
		if err := rows.Scan(&e.Seq, &e.Verb, &e.Name, &arg, &e.Outcome, &value); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Arg = arg.String
		e.Value = value.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database. An active run is rolled back.
// Close is idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	if j.tx != nil {
		j.tx.Rollback()
		j.tx = nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

var _ processor.Recorder = (*Journal)(nil)

package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/tebeka/atexit"
)

const defaultBatchSize = 50000

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	alpha      REAL NOT NULL,
	a          REAL NOT NULL,
	c          REAL NOT NULL,
	x_max      REAL NOT NULL,
	t_max      REAL NOT NULL,
	dx         REAL NOT NULL,
	dt         REAL NOT NULL,
	n_space    INTEGER NOT NULL,
	m_time     INTEGER NOT NULL,
	solver     TEXT,
	history    TEXT,
	outcome    TEXT
);
CREATE TABLE IF NOT EXISTS axes (
	run_id TEXT NOT NULL REFERENCES runs(id),
	axis   TEXT NOT NULL,
	idx    INTEGER NOT NULL,
	value  REAL NOT NULL,
	PRIMARY KEY (run_id, axis, idx)
);
CREATE TABLE IF NOT EXISTS cells (
	run_id TEXT NOT NULL REFERENCES runs(id),
	n      INTEGER NOT NULL,
	j      INTEGER NOT NULL,
	t      REAL NOT NULL,
	x      REAL NOT NULL,
	u      REAL NOT NULL,
	PRIMARY KEY (run_id, n, j)
);`

type cell struct {
	n, j    int
	t, x, u float64
}

// SQLite writes runs into a SQLite database. Cells are buffered and
// inserted in one transaction per batch.
type SQLite struct {
	*sql.DB

	mu        sync.Mutex
	path      string
	runID     string
	x         []float64
	pending   []cell
	batchSize int
}

// NewSQLite opens (or creates) the database at path. An empty path creates
// fracpde_<run-id>.sqlite3 in the working directory. Pending cells are
// flushed at process exit.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "fracpde_" + NewRunID() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open %s: %w", path, err)
	}

	s, err := NewSQLiteWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.path = path

	return s, nil
}

// NewSQLiteWithDB records into an already opened database.
func NewSQLiteWithDB(db *sql.DB) (*SQLite, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("recorder: create schema: %w", err)
	}

	s := &SQLite{DB: db, batchSize: defaultBatchSize}
	atexit.Register(func() { _ = s.Flush() })

	return s, nil
}

// Path returns the database file, or "" for NewSQLiteWithDB.
func (s *SQLite) Path() string { return s.path }

// RunID returns the ID of the run in progress.
func (s *SQLite) RunID() string { return s.runID }

// Begin inserts the run row and both axes.
func (s *SQLite) Begin(run RunInfo) error {
	run.fill()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, started_at, alpha, a, c, x_max, t_max, dx, dt, n_space, m_time, solver, history)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Started.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		run.Alpha, run.A, run.C, run.XMax, run.TMax, run.Dx, run.Dt,
		len(run.X), len(run.T), run.Solver, run.History,
	)
	if err != nil {
		return fmt.Errorf("recorder: insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO axes (run_id, axis, idx, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for axis, vals := range map[string][]float64{"x": run.X, "t": run.T} {
		for i, v := range vals {
			if _, err = stmt.Exec(run.ID, axis, i, v); err != nil {
				return fmt.Errorf("recorder: insert axis %s: %w", axis, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	s.runID = run.ID
	s.x = append([]float64(nil), run.X...)
	s.pending = s.pending[:0]

	return nil
}

// WriteRow buffers one time level.
func (s *SQLite) WriteRow(n int, t float64, row []float64) error {
	s.mu.Lock()
	if s.runID == "" {
		s.mu.Unlock()
		return ErrNotStarted
	}
	if len(row) != len(s.x) {
		s.mu.Unlock()
		return fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(row), len(s.x))
	}
	for j, u := range row {
		s.pending = append(s.pending, cell{n: n, j: j, t: t, x: s.x[j], u: u})
	}
	full := len(s.pending) >= s.batchSize
	s.mu.Unlock()

	if full {
		return s.Flush()
	}

	return nil
}

// Flush inserts all buffered cells.
func (s *SQLite) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO cells (run_id, n, j, t, x, u) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range s.pending {
		if _, err = stmt.Exec(s.runID, c.n, c.j, c.t, c.x, c.u); err != nil {
			return fmt.Errorf("recorder: insert cell (%d,%d): %w", c.n, c.j, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	s.pending = s.pending[:0]

	return nil
}

// Finish flushes pending cells and stores the outcome.
func (s *SQLite) Finish(outcome string) error {
	if s.runID == "" {
		return ErrNotStarted
	}
	if err := s.Flush(); err != nil {
		return err
	}
	_, err := s.DB.Exec(`UPDATE runs SET outcome = ? WHERE id = ?`, outcome, s.runID)

	return err
}

// Close flushes and closes the database.
func (s *SQLite) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}

	return s.DB.Close()
}

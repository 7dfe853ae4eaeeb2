package dataset

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sweep_runs (
	run_id      TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	steps       INTEGER NOT NULL,
	capability  REAL NOT NULL,
	notes       TEXT
);

CREATE TABLE IF NOT EXISTS sweep_samples (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id           TEXT NOT NULL,
	load             REAL NOT NULL,
	distance_to_task REAL NOT NULL,
	total_distance   REAL NOT NULL,
	capability       REAL NOT NULL,
	suitability      REAL NOT NULL,
	FOREIGN KEY (run_id) REFERENCES sweep_runs(run_id)
);
`

// #endregion schema

// #region store

// Store persists sweep runs and their samples in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region runs

// Run describes one recorded sweep.
type Run struct {
	RunID      string
	CreatedAt  time.Time
	Steps      int
	Capability float64
	Notes      string
}

// SaveRun records a sweep run and its samples in one transaction and
// returns the new run ID.
func (s *Store) SaveRun(cfg SweepConfig, notes string, samples []Sample) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sweep_runs (run_id, created_at, steps, capability, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), cfg.Steps, cfg.Capability, nullIfEmpty(notes),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sweep_samples (run_id, load, distance_to_task, total_distance, capability, suitability)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("prepare samples: %w", err)
	}
	defer stmt.Close()

	for _, sa := range samples {
		if _, err := stmt.Exec(id, sa.Load, sa.DistanceToTask, sa.TotalDistance, sa.Capability, sa.Suitability); err != nil {
			return "", fmt.Errorf("insert sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetRun loads a run's metadata.
func (s *Store) GetRun(runID string) (Run, error) {
	var r Run
	var createdAt string
	var notes sql.NullString
	err := s.db.QueryRow(
		`SELECT run_id, created_at, steps, capability, notes FROM sweep_runs WHERE run_id = ?`,
		runID,
	).Scan(&r.RunID, &createdAt, &r.Steps, &r.Capability, &notes)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.Notes = notes.String
	return r, nil
}

// Samples loads all samples of a run in insertion order.
func (s *Store) Samples(runID string) ([]Sample, error) {
	rows, err := s.db.Query(
		`SELECT load, distance_to_task, total_distance, capability, suitability
		 FROM sweep_samples WHERE run_id = ? ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var sa Sample
		if err := rows.Scan(&sa.Load, &sa.DistanceToTask, &sa.TotalDistance, &sa.Capability, &sa.Suitability); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return out, nil
}

// #endregion runs

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

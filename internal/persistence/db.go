// Package persistence provides the SQLite run store for the behavesim
// CLI. The enhancement engine itself never touches storage; runs are
// recorded here after the fact for comparison across calibrations.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Aisprintone/Sparrow-sub006/internal/enhance"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		scenario TEXT NOT NULL,
		personality TEXT NOT NULL,
		demographic TEXT NOT NULL,
		culture TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		months INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		metrics_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Run is one recorded enhancement run.
type Run struct {
	ID          string    `db:"id" json:"id"`
	CreatedAt   time.Time `db:"-" json:"created_at"`
	Scenario    string    `db:"scenario" json:"scenario"`
	Personality string    `db:"personality" json:"personality"`
	Demographic string    `db:"demographic" json:"demographic"`
	Culture     string    `db:"culture" json:"culture"`
	Iterations  int       `db:"iterations" json:"iterations"`
	Months      int       `db:"months" json:"months"`
	Seed        int64     `db:"seed" json:"seed"`

	Metrics enhance.Metrics `db:"-" json:"metrics"`
}

// SaveRun records a completed run and returns its generated ID.
func (db *DB) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	metricsJSON, err := json.Marshal(r.Metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}

	_, err = db.conn.Exec(`INSERT INTO runs
		(id, created_at, scenario, personality, demographic, culture,
		 iterations, months, seed, metrics_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339), r.Scenario, r.Personality,
		r.Demographic, r.Culture, r.Iterations, r.Months, r.Seed,
		string(metricsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run %s: %w", r.ID, err)
	}
	return r.ID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Queryx(`SELECT id, created_at, scenario, personality,
		demographic, culture, iterations, months, seed, metrics_json
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r           Run
			createdAt   string
			metricsJSON string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Scenario, &r.Personality,
			&r.Demographic, &r.Culture, &r.Iterations, &r.Months, &r.Seed,
			&metricsJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		if err := json.Unmarshal([]byte(metricsJSON), &r.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics for run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

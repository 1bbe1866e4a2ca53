// Package score persists finished dungeon runs to a local SQLite database.
package score

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "runs"

// Result records the outcome of one finished session.
type Result struct {
	ID        string
	Level     string
	Outcome   string
	Treasure  int
	Turns     int
	CreatedAt time.Time
}

// Store wraps the SQLite connection for the run ledger.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run database at the given path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}

	store := &Store{db: db}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTable creates the runs table if it does not exist.
func (s *Store) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id TEXT PRIMARY KEY,
		level TEXT NOT NULL,
		outcome TEXT NOT NULL,
		treasure INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

// Record inserts one finished run. A missing ID is filled in with a fresh
// UUID, which is also written back to the result.
func (s *Store) Record(res *Result) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	const insertSQL = `
	INSERT INTO ` + tableName + ` (id, level, outcome, treasure, turns)
	VALUES (?, ?, ?, ?, ?);`

	if _, err := s.db.Exec(insertSQL, res.ID, res.Level, res.Outcome, res.Treasure, res.Turns); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", res.ID, err)
	}
	return nil
}

// Top retrieves the best runs, ordered by treasure collected and then by
// fewest turns.
func (s *Store) Top(limit int) ([]Result, error) {
	const selectSQL = `
	SELECT id, level, outcome, treasure, turns, created_at
	FROM ` + tableName + `
	ORDER BY treasure DESC, turns ASC
	LIMIT ?;`

	rows, err := s.db.Query(selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.ID, &res.Level, &res.Outcome, &res.Treasure, &res.Turns, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return results, nil
}

// Count returns the total number of recorded runs.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + tableName + `;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Package benchstore persists benchmark sessions and per-test runs in
// SQLite. One session records one (model, suite) benchmark invocation.
package benchstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "benchmarks.db"

type Store struct {
	*sql.DB
	path string
}

// Open opens or creates the benchmark database at the given path. Use
// ":memory:" for tests.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &Store{DB: sqlDB, path: path}
	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) InitSchema() error {
	if _, err := s.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Session describes one benchmark invocation for one model.
type Session struct {
	ID          int64
	ModelName   string
	DisplayName string
	Suite       string
	RunsPerTest int
	TestCount   int
	CreatedAt   time.Time
}

// Run is one averaged test-case result within a session.
type Run struct {
	SessionID        int64
	ContestID        string
	Expected         string
	Found            []string
	Correct          bool
	LatencyMS        float64
	Error            string
	PromptTokens     int
	CompletionTokens int
}

// CreateSession inserts a session row and returns its id.
func (s *Store) CreateSession(modelName, displayName, suite string, runsPerTest, testCount int) (int64, error) {
	result, err := s.Exec(`
		INSERT INTO sessions (model_name, display_name, suite, runs_per_test, test_count)
		VALUES (?, ?, ?, ?, ?)
	`, modelName, displayName, suite, runsPerTest, testCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}
	return id, nil
}

// InsertRun records one averaged test-case result. Found URLs are stored as
// a JSON array.
func (s *Store) InsertRun(run Run) error {
	foundJSON, err := json.Marshal(run.Found)
	if err != nil {
		return fmt.Errorf("failed to encode found URLs: %w", err)
	}

	_, err = s.Exec(`
		INSERT INTO runs (session_id, contest_id, expected, found, correct,
			latency_ms, error, prompt_tokens, completion_tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.SessionID, run.ContestID, run.Expected, string(foundJSON), run.Correct,
		run.LatencyMS, run.Error, run.PromptTokens, run.CompletionTokens)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// SessionRuns returns all runs recorded for a session, in insertion order.
func (s *Store) SessionRuns(sessionID int64) ([]Run, error) {
	rows, err := s.Query(`
		SELECT session_id, contest_id, expected, found, correct,
			latency_ms, error, prompt_tokens, completion_tokens
		FROM runs WHERE session_id = ? ORDER BY run_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var foundJSON string
		if err := rows.Scan(&run.SessionID, &run.ContestID, &run.Expected, &foundJSON,
			&run.Correct, &run.LatencyMS, &run.Error,
			&run.PromptTokens, &run.CompletionTokens); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(foundJSON), &run.Found); err != nil {
			return nil, fmt.Errorf("failed to decode found URLs: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

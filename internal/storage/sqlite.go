// Package storage provides SQLite-based persistence for finished wheel puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a puzzle ID has no record.
var ErrNotFound = errors.New("storage: puzzle not found")

// Store manages the SQLite database connection for puzzle history.
type Store struct {
	db *sql.DB
}

// Pick is one confirmed selection of a puzzle, in the order it was made.
type Pick struct {
	Direction string
	Base      int
	Slice     int
	Total     int
}

// PuzzleRecord is a finished puzzle.
type PuzzleRecord struct {
	ID        string // UUID; assigned on save when empty
	Seed      int64
	Picks     []Pick
	Tally     int // Sum of pick totals
	CreatedAt time.Time
}

// Stats aggregates all recorded puzzles.
type Stats struct {
	Puzzles    int
	BestTally  int
	WorstTally int
	AvgTally   decimal.Decimal // Exact mean, rounded to two places
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS puzzles (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			tally INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_puzzles_tally ON puzzles(tally DESC);

		CREATE TABLE IF NOT EXISTS picks (
			puzzle_id TEXT NOT NULL REFERENCES puzzles(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			direction TEXT NOT NULL,
			base_value INTEGER NOT NULL,
			slice_value INTEGER NOT NULL,
			total_value INTEGER NOT NULL,
			PRIMARY KEY (puzzle_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePuzzle records a finished puzzle and its picks in one transaction.
// Returns the puzzle ID, generated when rec.ID is empty.
func (s *Store) SavePuzzle(rec PuzzleRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec(
		"INSERT INTO puzzles (id, seed, tally) VALUES (?, ?, ?)",
		rec.ID, rec.Seed, rec.Tally,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save puzzle: %w", err)
	}

	for i, p := range rec.Picks {
		if _, err := tx.Exec(
			`INSERT INTO picks (puzzle_id, seq, direction, base_value, slice_value, total_value)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, i, p.Direction, p.Base, p.Slice, p.Total,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save pick %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit puzzle: %w", err)
	}
	return rec.ID, nil
}

// RecentPuzzles returns the latest puzzles, newest first, with their picks.
func (s *Store) RecentPuzzles(limit int) ([]PuzzleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, tally, created_at
		 FROM puzzles
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}

	var records []PuzzleRecord
	for rows.Next() {
		var r PuzzleRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Tally, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range records {
		picks, err := s.picks(records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Picks = picks
	}
	return records, nil
}

// Puzzle returns one puzzle by ID, or ErrNotFound.
func (s *Store) Puzzle(id string) (PuzzleRecord, error) {
	r := PuzzleRecord{ID: id}
	var createdAt any
	err := s.db.QueryRow(
		"SELECT seed, tally, created_at FROM puzzles WHERE id = ?",
		id,
	).Scan(&r.Seed, &r.Tally, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return PuzzleRecord{}, ErrNotFound
	}
	if err != nil {
		return PuzzleRecord{}, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	if r.Picks, err = s.picks(id); err != nil {
		return PuzzleRecord{}, err
	}
	return r, nil
}

func (s *Store) picks(puzzleID string) ([]Pick, error) {
	rows, err := s.db.Query(
		`SELECT direction, base_value, slice_value, total_value
		 FROM picks
		 WHERE puzzle_id = ?
		 ORDER BY seq`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		var p Pick
		if err := rows.Scan(&p.Direction, &p.Base, &p.Slice, &p.Total); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pick: %w", err)
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: pick iteration error: %w", err)
	}
	return picks, nil
}

// Stats returns aggregates over every recorded puzzle.
// All fields are zero when nothing has been recorded.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var sum int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(tally), 0), COALESCE(MAX(tally), 0),
		        COALESCE(MIN(tally), 0), MAX(created_at)
		 FROM puzzles`,
	).Scan(&st.Puzzles, &sum, &st.BestTally, &st.WorstTally, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if st.Puzzles > 0 {
		st.AvgTally = decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(st.Puzzles))).Round(2)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// Clear deletes every recorded puzzle.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM picks; DELETE FROM puzzles;"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME as either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

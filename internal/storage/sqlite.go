// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-invaders/internal/run"
)

// DefaultLimit is the number of rows returned when no limit is given.
const DefaultLimit = 10

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run on the high-score table.
type ScoreEntry struct {
	ID             int64
	Name           string
	Score          int
	Level          int
	Lives          int
	BulletsShot    int
	ShipsDestroyed int
	CreatedAt      time.Time
}

// EntryFromState builds a score entry for a finished run.
func EntryFromState(name string, s run.GameState) ScoreEntry {
	return ScoreEntry{
		Name:           name,
		Score:          s.Score,
		Level:          s.Level,
		Lives:          s.LivesRemaining,
		BulletsShot:    s.BulletsShot,
		ShipsDestroyed: s.ShipsDestroyed,
	}
}

// Accuracy returns the share of shots that destroyed a ship, 0..1.
func (e ScoreEntry) Accuracy() float64 {
	if e.BulletsShot == 0 {
		return 0
	}
	return float64(e.ShipsDestroyed) / float64(e.BulletsShot)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			lives INTEGER NOT NULL DEFAULT 0,
			bullets_shot INTEGER NOT NULL DEFAULT 0,
			ships_destroyed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_name ON scores(name);
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

// SaveScore records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(ctx context.Context, e ScoreEntry) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (name, score, level, lives, bullets_shot, ships_destroyed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.Score, e.Level, e.Lives, e.BulletsShot, e.ShipsDestroyed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, highest first.
// Ties go to the earlier run.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, lives, bullets_shot, ships_destroyed, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// PlayerScores retrieves the best N scores of one player.
func (s *Store) PlayerScores(name string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, lives, bullets_shot, ships_destroyed, created_at
		 FROM scores
		 WHERE name = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player scores: %w", err)
	}
	return scanEntries(rows)
}

// AllScores retrieves every recorded run (no limit).
func (s *Store) AllScores() ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, score, level, lives, bullets_shot, ships_destroyed, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &e.Lives,
			&e.BulletsShot, &e.ShipsDestroyed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetime columns.
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

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes every recorded run.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	RunsCount      int
	HighScore      int
	AvgScore       float64
	BestLevel      int
	BulletsShot    int64
	ShipsDestroyed int64
	LastPlayed     time.Time
}

// GetStats retrieves aggregated statistics over all recorded runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(bullets_shot), 0), COALESCE(SUM(ships_destroyed), 0)
		 FROM scores`,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore,
		&stats.BestLevel, &stats.BulletsShot, &stats.ShipsDestroyed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Recorder writes finished runs to a Store under one player name.
type Recorder struct {
	Store *Store
	Name  string
}

// Record implements run.Recorder.
func (r Recorder) Record(ctx context.Context, s run.GameState) error {
	_, err := r.Store.SaveScore(ctx, EntryFromState(r.Name, s))
	return err
}

var _ run.Recorder = Recorder{}

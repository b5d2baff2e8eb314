// Package storage keeps a history of finished snake sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is supplementary: the plain-text high score file stays the
// source of truth for the best score shown in game.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/snake"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished session.
type SessionRecord struct {
	ID        string // UUID, assigned by SaveSession when empty
	Player    string
	Frontend  string // "window", "tui" or "ssh"
	Score     int
	FoodEaten int
	Length    int
	EndReason string // "wall", "self" or "cancel"
	Duration  int    // Duration in seconds
	NewRecord bool
	CreatedAt time.Time
}

// RecordFromSummary converts a finished game session into a history record.
func RecordFromSummary(sum snake.Summary, player, frontend string) SessionRecord {
	return SessionRecord{
		Player:    player,
		Frontend:  frontend,
		Score:     sum.Score,
		FoodEaten: sum.FoodEaten,
		Length:    sum.Length,
		EndReason: sum.Reason.String(),
		Duration:  int(sum.Duration.Round(time.Second) / time.Second),
		NewRecord: sum.NewRecord,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := core.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; a single connection serialises them.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			frontend TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			food_eaten INTEGER NOT NULL DEFAULT 0,
			length INTEGER NOT NULL DEFAULT 1,
			end_reason TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
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

// SaveSession records a finished session and returns its ID.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, player, frontend, score, food_eaten, length, end_reason, duration_secs, new_record, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Player,
		rec.Frontend,
		rec.Score,
		rec.FoodEaten,
		rec.Length,
		rec.EndReason,
		rec.Duration,
		rec.NewRecord,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.ID, nil
}

const selectSessions = `SELECT id, player, frontend, score, food_eaten, length, end_reason,
		        duration_secs, new_record, created_at
		 FROM sessions`

// TopSessions retrieves the N best sessions, highest score first.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(selectSessions+` ORDER BY score DESC, seq ASC LIMIT ?`, limit)
}

// RecentSessions retrieves the N most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(selectSessions+` ORDER BY seq DESC LIMIT ?`, limit)
}

// PlayerSessions retrieves the most recent sessions of one player.
func (s *Store) PlayerSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(selectSessions+` WHERE player = ? ORDER BY seq DESC LIMIT ?`, player, limit)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Player,
			&rec.Frontend,
			&rec.Score,
			&rec.FoodEaten,
			&rec.Length,
			&rec.EndReason,
			&rec.Duration,
			&rec.NewRecord,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest recorded score, or 0 if there is none.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions   int
	BestScore  int
	AvgScore   float64
	TotalFood  int64
	TotalSecs  int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over the whole history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(food_eaten), 0), COALESCE(SUM(duration_secs), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.BestScore, &stats.AvgScore, &stats.TotalFood, &stats.TotalSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM sessions ORDER BY seq DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both driver-parsed and raw string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

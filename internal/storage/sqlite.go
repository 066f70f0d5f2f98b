// Package storage provides SQLite-based persistence for the render
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RenderEntry records one completed render run.
type RenderEntry struct {
	ID         int64
	Output     string
	Width      int
	Height     int
	Frames     int
	DurationMS int64
	CreatedAt  time.Time
}

// Stats contains aggregated history statistics.
type Stats struct {
	Renders       int
	TotalFrames   int64
	AvgDurationMS float64
	LastRender    time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			output TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
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

// SaveRender records a completed render. Returns the inserted ID.
func (s *Store) SaveRender(e RenderEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO renders (output, width, height, frames, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Output, e.Width, e.Height, e.Frames, e.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save render: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRenders retrieves the most recent render runs, newest first.
func (s *Store) RecentRenders(limit int) ([]RenderEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, output, width, height, frames, duration_ms, created_at
		 FROM renders
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var entries []RenderEntry
	for rows.Next() {
		var e RenderEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Output, &e.Width, &e.Height, &e.Frames, &e.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetStats retrieves aggregated statistics over the whole history.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(AVG(duration_ms), 0)
		 FROM renders`,
	).Scan(&stats.Renders, &stats.TotalFrames, &stats.AvgDurationMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM renders ORDER BY created_at DESC LIMIT 1`,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last render: %w", err)
	}
	if err == nil {
		stats.LastRender = parseTimestamp(last)
	}

	return stats, nil
}

// ClearHistory deletes every recorded render.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM renders")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a
// string for DATETIME columns.
func parseTimestamp(v any) time.Time {
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

// Package storage keeps the session ledger: one row per completed
// playthrough. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The default database lives in memory and is gone when the
// process exits.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection backing the ledger.
type Store struct {
	db *sql.DB
}

// SessionRecord is one completed playthrough.
type SessionRecord struct {
	ID        uuid.UUID
	GameID    string
	Score     int
	Best      int // Best score of the process when this session ended
	Ticks     int
	Pairs     int // Obstacle pairs generated during the session
	Reason    string
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Stats aggregates every recorded session.
type Stats struct {
	Sessions   int
	BestScore  int
	AvgScore   float64
	TotalTicks int64
	LastEnded  time.Time
}

// Open opens the ledger database. An empty dsn or MemoryDSN gives an
// in-memory database; anything else is a file path, created with its
// parent directories if needed.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	if !isMemory(dsn) {
		// Expand ~ to home directory
		if dsn[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}

		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every pooled connection to :memory: would get its own empty database
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

func isMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.HasPrefix(dsn, "file::memory:")
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			best INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			pairs INTEGER NOT NULL,
			reason TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
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

// RecordSession stores rec. A zero ID is replaced with a fresh one; the
// stored ID is returned.
func (s *Store) RecordSession(rec SessionRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, game_id, score, best, ticks, pairs, reason, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.GameID,
		rec.Score,
		rec.Best,
		rec.Ticks,
		rec.Pairs,
		rec.Reason,
		rec.StartedAt.UnixNano(),
		rec.EndedAt.UnixNano(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot record session: %w", err)
	}

	return rec.ID, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, best, ticks, pairs, reason, started_at, ended_at
		 FROM sessions
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			id             string
			started, ended int64
		)
		if err := rows.Scan(&id, &rec.GameID, &rec.Score, &rec.Best, &rec.Ticks, &rec.Pairs,
			&rec.Reason, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: malformed session id %q: %w", id, err)
		}
		rec.StartedAt = time.Unix(0, started)
		rec.EndedAt = time.Unix(0, ended)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregates over every recorded session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastEnded int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(ticks), 0), COALESCE(MAX(ended_at), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.BestScore, &stats.AvgScore, &stats.TotalTicks, &lastEnded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if stats.Sessions > 0 {
		stats.LastEnded = time.Unix(0, lastEnded)
	}
	return stats, nil
}

// Package storage provides SQLite-based match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished matches are stored; games in progress are never saved.
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
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID          int64
	MatchID     string // UUID, generated on save if empty
	GameID      string
	Player1     string
	Player2     string
	WinnerIndex int // 0 for Player1, 1 for Player2
	Turns       int
	CreatedAt   time.Time
}

// Winner returns the winner's name.
func (m MatchRecord) Winner() string {
	if m.WinnerIndex == 1 {
		return m.Player2
	}
	return m.Player1
}

// LeaderboardEntry aggregates one player name across matches.
type LeaderboardEntry struct {
	Name   string
	Wins   int
	Played int
}

// WinRate returns wins as a fraction of matches played.
func (e LeaderboardEntry) WinRate() float64 {
	if e.Played == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Played)
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	Matches      int
	AvgTurns     float64
	ShortestWin  int
	LongestMatch int
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			winner_index INTEGER NOT NULL CHECK (winner_index IN (0, 1)),
			turns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_player1 ON matches(player1);
		CREATE INDEX IF NOT EXISTS idx_matches_player2 ON matches(player2);
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

// SaveMatch records a finished match and returns the stored record.
func (s *Store) SaveMatch(m MatchRecord) (MatchRecord, error) {
	if m.WinnerIndex != 0 && m.WinnerIndex != 1 {
		return m, fmt.Errorf("storage: winner index %d is not 0 or 1", m.WinnerIndex)
	}
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.CreatedAt = m.CreatedAt.UTC().Truncate(time.Second)

	res, err := s.db.Exec(
		`INSERT INTO matches (match_id, game_id, player1, player2, winner_index, turns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.GameID, m.Player1, m.Player2, m.WinnerIndex, m.Turns,
		m.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return m, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return m, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	m.ID = id
	return m, nil
}

const matchColumns = `id, match_id, game_id, player1, player2, winner_index, turns, created_at`

// MatchByID retrieves a match by its UUID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches returns the latest matches for a game, newest first.
// An empty gameID returns matches of every game.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return collectMatches(rows)
}

// PlayerMatches returns the latest matches a player name took part in.
func (s *Store) PlayerMatches(name string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE player1 = ? OR player2 = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		name, name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player matches: %w", err)
	}
	return collectMatches(rows)
}

// Leaderboard ranks player names by wins for a game.
// Ties are broken by fewer matches played, then by name.
func (s *Store) Leaderboard(gameID string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	// A name on both seats of one match plays it once.
	rows, err := s.db.Query(
		`SELECT name, SUM(won) AS wins, COUNT(DISTINCT match_id) AS played
		 FROM (
			SELECT match_id, player1 AS name, CASE WHEN winner_index = 0 THEN 1 ELSE 0 END AS won
			FROM matches WHERE game_id = ?
			UNION ALL
			SELECT match_id, player2 AS name, CASE WHEN winner_index = 1 THEN 1 ELSE 0 END AS won
			FROM matches WHERE game_id = ?
		 )
		 GROUP BY name
		 ORDER BY wins DESC, played ASC, name ASC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Wins, &e.Played); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(turns), 0), COALESCE(MIN(turns), 0), COALESCE(MAX(turns), 0), MAX(created_at)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Matches, &stats.AvgTurns, &stats.ShortestWin, &stats.LongestMatch, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game with recorded matches.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), AVG(turns), MIN(turns), MAX(turns), MAX(created_at)
		 FROM matches
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Matches, &gs.AvgTurns, &gs.ShortestWin, &gs.LongestMatch, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var m MatchRecord
	var createdAt any
	if err := sc.Scan(&m.ID, &m.MatchID, &m.GameID, &m.Player1, &m.Player2, &m.WinnerIndex, &m.Turns, &createdAt); err != nil {
		return m, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

func collectMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS rotation (
	room TEXT PRIMARY KEY,
	map TEXT NOT NULL,
	round_count INTEGER NOT NULL DEFAULT 0,
	last_infected INTEGER NOT NULL DEFAULT -1,
	last_infected2 INTEGER NOT NULL DEFAULT -1,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS kicks (
	id TEXT PRIMARY KEY,
	room TEXT NOT NULL,
	session_id TEXT NOT NULL,
	name TEXT,
	reason TEXT NOT NULL,
	kicked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Rotation is a room's map rotation checkpoint.
type Rotation struct {
	Map           string
	RoundCount    int
	LastInfected  int
	LastInfected2 int
}

// Kick is one inactivity (or admin) kick.
type Kick struct {
	ID        string
	SessionID string
	Name      string
	Reason    string
}

type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the sqlite database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db %s: %w", path, err)
	}
	// sqlite serialises writers anyway; one connection keeps :memory: databases shared.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) SaveRotation(room string, r Rotation) error {
	query := `
	INSERT INTO rotation (room, map, round_count, last_infected, last_infected2, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(room) DO UPDATE SET
		map = excluded.map,
		round_count = excluded.round_count,
		last_infected = excluded.last_infected,
		last_infected2 = excluded.last_infected2,
		updated_at = CURRENT_TIMESTAMP;
	`
	if _, err := s.DB.Exec(query, room, r.Map, r.RoundCount, r.LastInfected, r.LastInfected2); err != nil {
		return fmt.Errorf("saving rotation for %s: %w", room, err)
	}
	return nil
}

// LoadRotation returns the checkpoint of room; ok is false when none was saved.
func (s *Store) LoadRotation(room string) (Rotation, bool, error) {
	row := s.DB.QueryRow(
		"SELECT map, round_count, last_infected, last_infected2 FROM rotation WHERE room = ?", room)
	var r Rotation
	err := row.Scan(&r.Map, &r.RoundCount, &r.LastInfected, &r.LastInfected2)
	if errors.Is(err, sql.ErrNoRows) {
		return Rotation{}, false, nil
	}
	if err != nil {
		return Rotation{}, false, fmt.Errorf("loading rotation for %s: %w", room, err)
	}
	return r, true, nil
}

func (s *Store) RecordKick(room, sessionID, name, reason string) (string, error) {
	id := uuid.NewString()
	_, err := s.DB.Exec(
		"INSERT INTO kicks (id, room, session_id, name, reason) VALUES (?, ?, ?, ?, ?)",
		id, room, sessionID, name, reason)
	if err != nil {
		return "", fmt.Errorf("recording kick of %s: %w", sessionID, err)
	}
	return id, nil
}

// Kicks lists the kicks recorded for room, oldest first.
func (s *Store) Kicks(room string) ([]Kick, error) {
	rows, err := s.DB.Query(
		"SELECT id, session_id, name, reason FROM kicks WHERE room = ? ORDER BY kicked_at, rowid", room)
	if err != nil {
		return nil, fmt.Errorf("listing kicks for %s: %w", room, err)
	}
	defer rows.Close()

	var out []Kick
	for rows.Next() {
		var k Kick
		if err := rows.Scan(&k.ID, &k.SessionID, &k.Name, &k.Reason); err != nil {
			return nil, fmt.Errorf("scanning kick: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

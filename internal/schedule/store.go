package schedule

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when a game id does not exist.
var ErrNotFound = errors.New("game not found")

// New creates a new game store.
func New(db *sql.DB) GameStore {
	return &store{db: db}
}

func (s *store) AddGame(g NewGame) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"INSERT INTO games (name, date, location) VALUES (?, ?, ?)",
		g.Name, g.Date, g.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading game id: %w", err)
	}
	log.Debug("Added game", "id", id, "name", g.Name)
	return &Game{ID: id, Name: g.Name, Date: g.Date, Location: g.Location}, nil
}

func (s *store) GetGame(id int64) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, date, location FROM games WHERE id = ?", id)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying game %d: %w", id, err)
	}
	return game, nil
}

func (s *store) UpdateGame(id int64, g NewGame) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE games SET name = ?, date = ?, location = ? WHERE id = ?",
		g.Name, g.Date, g.Location, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating game %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update of game %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &Game{ID: id, Name: g.Name, Date: g.Date, Location: g.Location}, nil
}

func (s *store) DeleteGame(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting game %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of game %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	log.Debug("Deleted game", "id", id)
	return nil
}

func (s *store) ListGames() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Dated games newest first, undated games last.
	rows, err := s.db.Query("SELECT id, name, date, location FROM games ORDER BY (date IS NULL), date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating games: %w", err)
	}
	return games, nil
}

func scanGame(scanner interface{ Scan(dest ...any) error }) (*Game, error) {
	var g Game
	var date, location sql.NullString
	if err := scanner.Scan(&g.ID, &g.Name, &date, &location); err != nil {
		return nil, err
	}
	if date.Valid {
		g.Date = &date.String
	}
	if location.Valid {
		g.Location = &location.String
	}
	return &g, nil
}

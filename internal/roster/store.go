package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a player id does not exist.
	ErrNotFound = errors.New("player not found")
	// ErrDuplicateName is returned when a player name is already taken.
	ErrDuplicateName = errors.New("player name already exists")
)

// New creates a new player store.
func New(db *sql.DB) PlayerStore {
	return &store{db: db}
}

func (s *store) AddPlayer(p NewPlayer) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"INSERT INTO players (name, position, team) VALUES (?, ?, ?)",
		p.Name, p.Position, p.Team,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("inserting player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading player id: %w", err)
	}
	log.Debug("Added player", "id", id, "name", p.Name)
	return &Player{ID: id, Name: p.Name, Position: p.Position, Team: p.Team}, nil
}

func (s *store) GetPlayer(id int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, position, team FROM players WHERE id = ?", id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying player %d: %w", id, err)
	}
	return player, nil
}

func (s *store) UpdatePlayer(id int64, p NewPlayer) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE players SET name = ?, position = ?, team = ? WHERE id = ?",
		p.Name, p.Position, p.Team, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("updating player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update of player %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &Player{ID: id, Name: p.Name, Position: p.Position, Team: p.Team}, nil
}

func (s *store) DeletePlayer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting player %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of player %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	log.Debug("Deleted player", "id", id)
	return nil
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, position, team FROM players ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

func (s *store) SearchPlayers(query string, limit int) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.Query(
		"SELECT id, name, position, team FROM players WHERE name LIKE ? COLLATE NOCASE ORDER BY name COLLATE NOCASE LIMIT ?",
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

func collectPlayers(rows *sql.Rows) ([]Player, error) {
	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating players: %w", err)
	}
	return players, nil
}

func scanPlayer(scanner interface{ Scan(dest ...any) error }) (*Player, error) {
	var p Player
	var position, team sql.NullString
	if err := scanner.Scan(&p.ID, &p.Name, &position, &team); err != nil {
		return nil, err
	}
	if position.Valid {
		p.Position = &position.String
	}
	if team.Valid {
		p.Team = &team.String
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	// The libsql driver reports constraint failures as plain errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

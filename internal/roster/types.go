package roster

import (
	"database/sql"
	"sync"
)

// store handles all database operations for players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a member of the team roster.
type Player struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
	Team     *string `json:"team,omitempty"`
}

// NewPlayer carries the writable fields of a player.
type NewPlayer struct {
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
	Team     *string `json:"team,omitempty"`
}

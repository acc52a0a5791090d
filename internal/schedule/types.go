package schedule

import (
	"database/sql"
	"sync"
)

// store handles all database operations for games.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Game is a scheduled or played game. Date is free-form YYYY-MM-DD and may be
// absent for games that have not been scheduled yet.
type Game struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     *string `json:"date,omitempty"`
	Location *string `json:"location,omitempty"`
}

// NewGame carries the writable fields of a game.
type NewGame struct {
	Name     string  `json:"name"`
	Date     *string `json:"date,omitempty"`
	Location *string `json:"location,omitempty"`
}

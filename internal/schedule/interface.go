package schedule

// GameStore defines the interface for game storage.
type GameStore interface {
	AddGame(g NewGame) (*Game, error)
	GetGame(id int64) (*Game, error)
	UpdateGame(id int64, g NewGame) (*Game, error)
	DeleteGame(id int64) error
	ListGames() ([]Game, error)
}

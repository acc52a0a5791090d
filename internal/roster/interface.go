package roster

// PlayerStore defines the interface for roster storage.
type PlayerStore interface {
	AddPlayer(p NewPlayer) (*Player, error)
	GetPlayer(id int64) (*Player, error)
	UpdatePlayer(id int64, p NewPlayer) (*Player, error)
	DeletePlayer(id int64) error
	ListPlayers() ([]Player, error)
	SearchPlayers(query string, limit int) ([]Player, error)
}

package roster

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	AddPlayerFunc     func(p NewPlayer) (*Player, error)
	GetPlayerFunc     func(id int64) (*Player, error)
	UpdatePlayerFunc  func(id int64, p NewPlayer) (*Player, error)
	DeletePlayerFunc  func(id int64) error
	ListPlayersFunc   func() ([]Player, error)
	SearchPlayersFunc func(query string, limit int) ([]Player, error)

	AddPlayerCalls    []NewPlayer
	DeletePlayerCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddPlayer(p NewPlayer) (*Player, error) {
	m.mu.Lock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, p)
	m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(p)
	}
	return &Player{ID: 1, Name: p.Name, Position: p.Position, Team: p.Team}, nil
}

func (m *MockStore) GetPlayer(id int64) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return &Player{ID: id, Name: "player"}, nil
}

func (m *MockStore) UpdatePlayer(id int64, p NewPlayer) (*Player, error) {
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, p)
	}
	return &Player{ID: id, Name: p.Name, Position: p.Position, Team: p.Team}, nil
}

func (m *MockStore) DeletePlayer(id int64) error {
	m.mu.Lock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SearchPlayers(query string, limit int) ([]Player, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(query, limit)
	}
	return nil, nil
}

package schedule

import "sync"

// MockStore is a mock implementation of the GameStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	AddGameFunc    func(g NewGame) (*Game, error)
	GetGameFunc    func(id int64) (*Game, error)
	UpdateGameFunc func(id int64, g NewGame) (*Game, error)
	DeleteGameFunc func(id int64) error
	ListGamesFunc  func() ([]Game, error)

	AddGameCalls    []NewGame
	UpdateGameCalls []int64
	DeleteGameCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddGame(g NewGame) (*Game, error) {
	m.mu.Lock()
	m.AddGameCalls = append(m.AddGameCalls, g)
	m.mu.Unlock()
	if m.AddGameFunc != nil {
		return m.AddGameFunc(g)
	}
	return &Game{ID: 1, Name: g.Name, Date: g.Date, Location: g.Location}, nil
}

func (m *MockStore) GetGame(id int64) (*Game, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(id)
	}
	return &Game{ID: id, Name: "game"}, nil
}

func (m *MockStore) UpdateGame(id int64, g NewGame) (*Game, error) {
	m.mu.Lock()
	m.UpdateGameCalls = append(m.UpdateGameCalls, id)
	m.mu.Unlock()
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(id, g)
	}
	return &Game{ID: id, Name: g.Name, Date: g.Date, Location: g.Location}, nil
}

func (m *MockStore) DeleteGame(id int64) error {
	m.mu.Lock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, id)
	m.mu.Unlock()
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(id)
	}
	return nil
}

func (m *MockStore) ListGames() ([]Game, error) {
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc()
	}
	return nil, nil
}

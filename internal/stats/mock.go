package stats

import "sync"

// MockStore is a mock implementation of the StatsStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddBattingRecordFunc          func(rec NewBattingRecord) (*BattingRecord, error)
	UpdateBattingRecordFunc       func(id int64, rec NewBattingRecord) (*BattingRecord, error)
	DeleteBattingRecordFunc       func(id int64) error
	AddPitchingRecordFunc         func(rec NewPitchingRecord) (*PitchingRecord, error)
	UpdatePitchingRecordFunc      func(id int64, rec NewPitchingRecord) (*PitchingRecord, error)
	DeletePitchingRecordFunc      func(id int64) error
	RecomputeBattingFunc          func(playerID int64) error
	RecomputePitchingFunc         func(playerID int64) error
	AggregateAverageFunc          func(playerID int64) (float64, error)
	AggregateERAFunc              func(playerID int64) (float64, error)
	BattingHistoryFunc            func(playerID int64) ([]BattingRecord, error)
	PitchingHistoryFunc           func(playerID int64) ([]PitchingRecord, error)
	BattingTotalsFunc             func(playerID int64) (BattingTotals, error)
	PitchingTotalsFunc            func(playerID int64) (PitchingTotals, error)
	BattingLeaderboardFunc        func() ([]BattingLeaderboardRow, error)
	PitchingLeaderboardFunc       func() ([]PitchingLeaderboardRow, error)
	GameBattingLinesFunc          func(gameID int64) ([]BattingLeaderboardRow, error)
	GamePitchingLinesFunc         func(gameID int64) ([]PitchingLeaderboardRow, error)
	PlayersWithRecordsForGameFunc func(gameID int64) ([]int64, []int64, error)

	// Call records
	AddBattingRecordCalls     []NewBattingRecord
	AddPitchingRecordCalls    []NewPitchingRecord
	RecomputeBattingCalls     []int64
	RecomputePitchingCalls    []int64
	DeleteBattingRecordCalls  []int64
	DeletePitchingRecordCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddBattingRecord(rec NewBattingRecord) (*BattingRecord, error) {
	m.mu.Lock()
	m.AddBattingRecordCalls = append(m.AddBattingRecordCalls, rec)
	m.mu.Unlock()
	if m.AddBattingRecordFunc != nil {
		return m.AddBattingRecordFunc(rec)
	}
	return &BattingRecord{PlayerID: rec.PlayerID}, nil
}

func (m *MockStore) UpdateBattingRecord(id int64, rec NewBattingRecord) (*BattingRecord, error) {
	if m.UpdateBattingRecordFunc != nil {
		return m.UpdateBattingRecordFunc(id, rec)
	}
	return &BattingRecord{ID: id, PlayerID: rec.PlayerID}, nil
}

func (m *MockStore) DeleteBattingRecord(id int64) error {
	m.mu.Lock()
	m.DeleteBattingRecordCalls = append(m.DeleteBattingRecordCalls, id)
	m.mu.Unlock()
	if m.DeleteBattingRecordFunc != nil {
		return m.DeleteBattingRecordFunc(id)
	}
	return nil
}

func (m *MockStore) AddPitchingRecord(rec NewPitchingRecord) (*PitchingRecord, error) {
	m.mu.Lock()
	m.AddPitchingRecordCalls = append(m.AddPitchingRecordCalls, rec)
	m.mu.Unlock()
	if m.AddPitchingRecordFunc != nil {
		return m.AddPitchingRecordFunc(rec)
	}
	return &PitchingRecord{PlayerID: rec.PlayerID}, nil
}

func (m *MockStore) UpdatePitchingRecord(id int64, rec NewPitchingRecord) (*PitchingRecord, error) {
	if m.UpdatePitchingRecordFunc != nil {
		return m.UpdatePitchingRecordFunc(id, rec)
	}
	return &PitchingRecord{ID: id, PlayerID: rec.PlayerID}, nil
}

func (m *MockStore) DeletePitchingRecord(id int64) error {
	m.mu.Lock()
	m.DeletePitchingRecordCalls = append(m.DeletePitchingRecordCalls, id)
	m.mu.Unlock()
	if m.DeletePitchingRecordFunc != nil {
		return m.DeletePitchingRecordFunc(id)
	}
	return nil
}

func (m *MockStore) RecomputeBattingSnapshots(playerID int64) error {
	m.mu.Lock()
	m.RecomputeBattingCalls = append(m.RecomputeBattingCalls, playerID)
	m.mu.Unlock()
	if m.RecomputeBattingFunc != nil {
		return m.RecomputeBattingFunc(playerID)
	}
	return nil
}

func (m *MockStore) RecomputePitchingSnapshots(playerID int64) error {
	m.mu.Lock()
	m.RecomputePitchingCalls = append(m.RecomputePitchingCalls, playerID)
	m.mu.Unlock()
	if m.RecomputePitchingFunc != nil {
		return m.RecomputePitchingFunc(playerID)
	}
	return nil
}

func (m *MockStore) AggregateAverage(playerID int64) (float64, error) {
	if m.AggregateAverageFunc != nil {
		return m.AggregateAverageFunc(playerID)
	}
	return 0, nil
}

func (m *MockStore) AggregateERA(playerID int64) (float64, error) {
	if m.AggregateERAFunc != nil {
		return m.AggregateERAFunc(playerID)
	}
	return 0, nil
}

func (m *MockStore) BattingHistory(playerID int64) ([]BattingRecord, error) {
	if m.BattingHistoryFunc != nil {
		return m.BattingHistoryFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) PitchingHistory(playerID int64) ([]PitchingRecord, error) {
	if m.PitchingHistoryFunc != nil {
		return m.PitchingHistoryFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) BattingTotals(playerID int64) (BattingTotals, error) {
	if m.BattingTotalsFunc != nil {
		return m.BattingTotalsFunc(playerID)
	}
	return BattingTotals{}, nil
}

func (m *MockStore) PitchingTotals(playerID int64) (PitchingTotals, error) {
	if m.PitchingTotalsFunc != nil {
		return m.PitchingTotalsFunc(playerID)
	}
	return PitchingTotals{}, nil
}

func (m *MockStore) BattingLeaderboard() ([]BattingLeaderboardRow, error) {
	if m.BattingLeaderboardFunc != nil {
		return m.BattingLeaderboardFunc()
	}
	return nil, nil
}

func (m *MockStore) PitchingLeaderboard() ([]PitchingLeaderboardRow, error) {
	if m.PitchingLeaderboardFunc != nil {
		return m.PitchingLeaderboardFunc()
	}
	return nil, nil
}

func (m *MockStore) GameBattingLines(gameID int64) ([]BattingLeaderboardRow, error) {
	if m.GameBattingLinesFunc != nil {
		return m.GameBattingLinesFunc(gameID)
	}
	return nil, nil
}

func (m *MockStore) GamePitchingLines(gameID int64) ([]PitchingLeaderboardRow, error) {
	if m.GamePitchingLinesFunc != nil {
		return m.GamePitchingLinesFunc(gameID)
	}
	return nil, nil
}

func (m *MockStore) PlayersWithRecordsForGame(gameID int64) ([]int64, []int64, error) {
	if m.PlayersWithRecordsForGameFunc != nil {
		return m.PlayersWithRecordsForGameFunc(gameID)
	}
	return nil, nil, nil
}

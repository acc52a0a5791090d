package slack

import (
	"sync"

	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	mu sync.Mutex

	GameCreatedFunc      func(game *schedule.Game) error
	BattingRecordedFunc  func(playerName string, rec *stats.BattingRecord) error
	PitchingRecordedFunc func(playerName string, rec *stats.PitchingRecord) error

	GameCreatedCalls      []*schedule.Game
	BattingRecordedCalls  []string
	PitchingRecordedCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) GameCreated(game *schedule.Game) error {
	m.mu.Lock()
	m.GameCreatedCalls = append(m.GameCreatedCalls, game)
	m.mu.Unlock()
	if m.GameCreatedFunc != nil {
		return m.GameCreatedFunc(game)
	}
	return nil
}

func (m *MockNotifier) BattingRecorded(playerName string, rec *stats.BattingRecord) error {
	m.mu.Lock()
	m.BattingRecordedCalls = append(m.BattingRecordedCalls, playerName)
	m.mu.Unlock()
	if m.BattingRecordedFunc != nil {
		return m.BattingRecordedFunc(playerName, rec)
	}
	return nil
}

func (m *MockNotifier) PitchingRecorded(playerName string, rec *stats.PitchingRecord) error {
	m.mu.Lock()
	m.PitchingRecordedCalls = append(m.PitchingRecordedCalls, playerName)
	m.mu.Unlock()
	if m.PitchingRecordedFunc != nil {
		return m.PitchingRecordedFunc(playerName, rec)
	}
	return nil
}

package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	recordWrites       int
	snapshotRecomputes int
	writeDurations     []float64
	notifSent          int
	notifFailed        int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		writeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRecordWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordWrites++
}

func (m *Mock) IncSnapshotRecomputes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotRecomputes++
}

func (m *Mock) ObserveWriteDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeDurations = append(m.writeDurations, duration)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RecordWrites returns the number of times IncRecordWrites was called.
func (m *Mock) RecordWrites() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordWrites
}

// SnapshotRecomputes returns the number of times IncSnapshotRecomputes was called.
func (m *Mock) SnapshotRecomputes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotRecomputes
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

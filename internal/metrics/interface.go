package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRecordWrites()
	IncSnapshotRecomputes()
	ObserveWriteDuration(duration float64)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}

// CounterStore persists lifetime counters across restarts, independently of
// the Prometheus process-local metrics.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}

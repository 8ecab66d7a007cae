package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	playsRecorded      int
	validationFailures int
	matchesStarted     int
	storeWriteFailures int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncPlaysRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playsRecorded++
}

func (m *Mock) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures++
}

func (m *Mock) IncMatchesStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesStarted++
}

func (m *Mock) IncStoreWriteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeWriteFailures++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlaysRecorded returns the number of times IncPlaysRecorded was called.
func (m *Mock) PlaysRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playsRecorded
}

// ValidationFailures returns the number of times IncValidationFailures was called.
func (m *Mock) ValidationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures
}

// MatchesStarted returns the number of times IncMatchesStarted was called.
func (m *Mock) MatchesStarted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesStarted
}

// StoreWriteFailures returns the number of times IncStoreWriteFailures was called.
func (m *Mock) StoreWriteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeWriteFailures
}
